// Package outpin drives a single digital output line.
//
// A Pin is bound once to a hardware line through a Driver and afterwards
// only ever changes level through SetHigh and SetLow:
//
//	led, err := outpin.Initialize(drv, board, 25)
//	if err != nil {
//	    // nothing useful can happen without the pin
//	}
//	led.SetHigh()
//	time.Sleep(time.Second)
//	led.SetLow()
//
// Errors are built without fmt so the package stays small under TinyGo.
package outpin

import (
	"errors"
	"strconv"
	"time"
)

// ErrHardwareUnavailable is returned by Initialize when the requested pin
// cannot be claimed as an output.
var ErrHardwareUnavailable = errors.New("hardware unavailable")

// Level is the logical state of a digital output: either Low or High.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// Line is a hardware line that has been configured as an output.
type Line interface {
	// Set drives the line high (true) or low (false).
	Set(high bool) error
}

// Driver binds pin numbers to hardware lines.
type Driver interface {
	// Claim configures pin n as an output and returns the line driving it.
	// Claim fails if the line does not exist or is owned by someone else.
	Claim(n int) (Line, error)
}

// Board describes which pin numbers exist on a board and which of them are
// already wired to another peripheral.
type Board struct {
	NumPins  int   // Valid pin numbers are [0, NumPins).
	Reserved []int // Pins owned by on-board peripherals.
}

// Check reports why pin n cannot be used as a general output on b, or
// returns the empty string if it can.
func (b Board) Check(n int) string {
	if n < 0 {
		return "negative pin number"
	}
	if n >= b.NumPins {
		return "pin out of range, board has " + strconv.Itoa(b.NumPins) + " pins"
	}
	for _, r := range b.Reserved {
		if r == n {
			return "pin reserved by on-board peripheral"
		}
	}
	return ""
}

// PinError describes a pin that could not be initialized. It always matches
// ErrHardwareUnavailable with errors.Is.
type PinError struct {
	Pin    int
	Reason string
	Err    error // Underlying driver error, may be nil.
}

func (e *PinError) Error() string {
	msg := "pin " + strconv.Itoa(e.Pin) + ": " + ErrHardwareUnavailable.Error() + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PinError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrHardwareUnavailable}
	}
	return []error{ErrHardwareUnavailable, e.Err}
}

// Pin is a digital output line. The direction is fixed to output for the
// lifetime of the Pin. A Pin is not safe for concurrent use.
type Pin struct {
	number int
	line   Line
	level  Level
}

// Initialize validates n against the board, claims it through d and drives
// it low. The returned error matches ErrHardwareUnavailable.
func Initialize(d Driver, b Board, n int) (*Pin, error) {
	if reason := b.Check(n); reason != "" {
		return nil, &PinError{Pin: n, Reason: reason}
	}
	line, err := d.Claim(n)
	if err != nil {
		return nil, &PinError{Pin: n, Reason: "claim failed", Err: err}
	}
	p := &Pin{number: n, line: line}
	p.set(Low)
	return p, nil
}

// Number returns the board-specific pin number.
func (p *Pin) Number() int { return p.number }

// Level returns the last level written to the pin.
func (p *Pin) Level() Level { return p.level }

// SetHigh drives the pin high.
func (p *Pin) SetHigh() { p.set(High) }

// SetLow drives the pin low.
func (p *Pin) SetLow() { p.set(Low) }

func (p *Pin) set(l Level) {
	// A claimed line has no failure path we can act on.
	_ = p.line.Set(bool(l))
	p.level = l
}

// Sleeper suspends the calling goroutine.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps using the runtime timer.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

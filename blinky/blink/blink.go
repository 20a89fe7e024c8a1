// Package blink toggles an output pin on and off at a fixed period, forever.
package blink

import (
	"io"
	"log/slog"
	"time"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
)

// DefaultPeriod is how long the pin stays in each state.
const DefaultPeriod = time.Second

// State is the state the Blinker will enter on its next Step.
type State uint8

const (
	On State = iota
	Off
)

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Blinker drives a Pin through the On/Off cycle. The zero State is On, so a
// fresh Blinker sets the pin high first.
type Blinker struct {
	Pin    *outpin.Pin
	Clock  outpin.Sleeper // Defaults to outpin.SystemClock.
	Period time.Duration  // Defaults to DefaultPeriod.
	Logger *slog.Logger   // Optional.

	state State
}

// State returns the state the next Step will enter.
func (b *Blinker) State() State { return b.state }

// Step enters the current state: it sets the pin level, then waits one
// period and moves to the other state.
func (b *Blinker) Step() {
	switch b.state {
	case On:
		b.Pin.SetHigh()
		b.log("led:on")
		b.state = Off
	case Off:
		b.Pin.SetLow()
		b.log("led:off")
		b.state = On
	}
	b.clock().Sleep(b.period())
}

// Run steps the blinker forever. It never returns.
func (b *Blinker) Run() {
	for {
		b.Step()
	}
}

func (b *Blinker) clock() outpin.Sleeper {
	if b.Clock == nil {
		return outpin.SystemClock{}
	}
	return b.Clock
}

func (b *Blinker) period() time.Duration {
	if b.Period <= 0 {
		return DefaultPeriod
	}
	return b.Period
}

var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(127),
}))

func (b *Blinker) log(msg string) {
	logger := b.Logger
	if logger == nil {
		logger = discard
	}
	logger.Debug(msg, slog.Int("pin", b.Pin.Number()))
}

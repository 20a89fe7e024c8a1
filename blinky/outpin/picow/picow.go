//go:build tinygo

// Package picow drives the GPIO lines of the CYW43439 wireless chip on the
// Raspberry Pi Pico W. The onboard LED is wired to CYW43439 GPIO 0, not to
// the RP2040, so it can only be reached through the chip.
package picow

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
	"github.com/soypat/cyw43439"
)

// LED is the CYW43439 GPIO wired to the Pico W onboard LED.
const LED = 0

// Board lists the CYW43439 GPIOs. GPIO 1 controls the SMPS power-save mode
// and GPIO 2 senses VBUS, so only the LED line is free.
var Board = outpin.Board{NumPins: 3, Reserved: []int{1, 2}}

// Driver claims CYW43439 GPIO lines. The wireless chip is powered up on the
// first Claim.
type Driver struct {
	Logger  *slog.Logger
	dev     *cyw43439.Device
	claimed [3]bool
}

// Claim implements outpin.Driver.
func (d *Driver) Claim(n int) (outpin.Line, error) {
	if n < 0 || n >= len(d.claimed) {
		return nil, errors.New("cyw43439: no such gpio " + strconv.Itoa(n))
	}
	if d.claimed[n] {
		return nil, errors.New("cyw43439: gpio " + strconv.Itoa(n) + " already claimed")
	}
	if d.dev == nil {
		if err := d.init(); err != nil {
			return nil, err
		}
	}
	d.claimed[n] = true
	return line{dev: d.dev, n: uint8(n)}, nil
}

func (d *Driver) init() error {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		}))
	}

	start := time.Now()
	dev := cyw43439.NewPicoWDevice()
	dev.SetLogger(logger)

	logger.Info("initializing pico W device...")
	err := dev.Init(cyw43439.DefaultWifiConfig())
	if err != nil {
		return errors.New("cyw43439 init failed:" + err.Error())
	}
	logger.Info("cyw43439:Init", slog.Duration("duration", time.Since(start)))
	d.dev = dev
	return nil
}

type line struct {
	dev *cyw43439.Device
	n   uint8
}

func (l line) Set(high bool) error {
	return l.dev.GPIOSet(l.n, high)
}

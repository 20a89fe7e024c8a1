//go:build linux

// Package cdev drives GPIO lines on Linux through the GPIO character device
// (/dev/gpiochipN), for single board computers such as the Raspberry Pi.
package cdev

import (
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
	"github.com/warthog618/go-gpiocdev"
)

// Consumer is the label the kernel shows for lines we hold.
const Consumer = "blinky"

// Driver requests lines from a single GPIO chip. A line already requested
// by another process (or by a kernel driver) is reported busy by the kernel
// and Claim fails.
type Driver struct {
	Chip string // e.g. "gpiochip0"
}

// Board returns the pin range of the driver's chip, read from the kernel.
func (d Driver) Board() (outpin.Board, error) {
	c, err := gpiocdev.NewChip(d.Chip)
	if err != nil {
		return outpin.Board{}, err
	}
	defer c.Close()
	return outpin.Board{NumPins: c.Lines()}, nil
}

// Claim implements outpin.Driver. The line starts out inactive.
func (d Driver) Claim(n int) (outpin.Line, error) {
	l, err := gpiocdev.RequestLine(d.Chip, n,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(Consumer),
	)
	if err != nil {
		return nil, err
	}
	return line{l}, nil
}

type line struct {
	l *gpiocdev.Line
}

func (l line) Set(high bool) error {
	v := 0
	if high {
		v = 1
	}
	return l.l.SetValue(v)
}

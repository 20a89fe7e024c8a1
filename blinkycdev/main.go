//go:build linux

// Command blinkycdev blinks a GPIO line on a Linux single board computer
// using the GPIO character device.
//
// The defaults drive line 4 of gpiochip0, which is pin J8-7 on a Raspberry
// Pi. Do not run this on a board where that line is externally driven.
//
//	go build -ldflags="-X main.chip=gpiochip0 -X main.line=17" ./blinkycdev
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/blink"
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin/cdev"
)

var (
	chip = "gpiochip0"
	line = "4"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	n, err := strconv.Atoi(line)
	if err != nil {
		logger.Error("parse line", slog.String("line", line), slog.Any("reason", err))
		os.Exit(1)
	}

	drv := cdev.Driver{Chip: chip}
	board, err := drv.Board()
	if err != nil {
		logger.Error("open chip", slog.String("chip", chip), slog.Any("reason", err))
		os.Exit(1)
	}

	led, err := outpin.Initialize(drv, board, n)
	if err != nil {
		logger.Error("initialize line", slog.String("chip", chip), slog.Any("reason", err))
		os.Exit(1)
	}
	logger.Info("blinking", slog.String("chip", chip), slog.Int("line", led.Number()))

	// No shutdown path: the kernel releases the line when the process exits.
	b := blink.Blinker{Pin: led, Logger: logger}
	b.Run()
}

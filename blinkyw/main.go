//go:build tinygo

// Command blinkyw blinks the Raspberry Pi Pico W onboard LED, which hangs off
// the CYW43439 wireless chip instead of an RP2040 GPIO.
//
//	tinygo flash -target=pico-w ./blinkyw
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/blink"
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin/picow"
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	drv := &picow.Driver{Logger: logger}
	led, err := outpin.Initialize(drv, picow.Board, picow.LED)
	if err != nil {
		for {
			logger.Error("initialize onboard LED", slog.Any("reason", err))
			time.Sleep(time.Second)
		}
	}

	b := blink.Blinker{Pin: led, Logger: logger}
	b.Run()
}

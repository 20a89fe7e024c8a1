//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"strconv"
	"time"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/blink"
	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
)

// pin is the GPIO to blink. GPIO25 is the Pico onboard LED.
// Override with -ldflags="-X main.pin=15".
var pin = "25"

// RP2040 exposes GPIO0-29. GPIO23 (SMPS mode), GPIO24 (VBUS sense) and
// GPIO29 (VSYS/3 ADC) are wired on the Pico board.
var board = outpin.Board{NumPins: 30, Reserved: []int{23, 24, 29}}

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	n, err := strconv.Atoi(pin)
	if err != nil {
		printErrForever(logger, "parse pin", slog.String("pin", pin), slog.Any("reason", err))
	}

	led, err := outpin.Initialize(new(outpin.MachineDriver), board, n)
	if err != nil {
		printErrForever(logger, "initialize pin", slog.Any("reason", err))
	}
	logger.Info("blinking", slog.Int("pin", led.Number()))

	b := blink.Blinker{Pin: led, Logger: logger}
	b.Run()
}

// printErrForever logs msg to serial @ 1hz. It blocks forever, so the
// message is still seen when the serial monitor attaches after boot.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}

//go:build tinygo

package outpin

import (
	"errors"
	"machine"
	"strconv"
)

// MachineDriver claims on-chip GPIO through TinyGo's machine package.
type MachineDriver struct {
	claimed map[int]bool
}

// Claim implements Driver.
func (d *MachineDriver) Claim(n int) (Line, error) {
	if n < 0 || n >= int(machine.NoPin) {
		return nil, errors.New("machine: no such pin " + strconv.Itoa(n))
	}
	if d.claimed[n] {
		return nil, errors.New("machine: pin " + strconv.Itoa(n) + " already claimed")
	}
	if d.claimed == nil {
		d.claimed = make(map[int]bool)
	}
	d.claimed[n] = true

	pin := machine.Pin(n)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return machineLine{pin}, nil
}

type machineLine struct {
	pin machine.Pin
}

func (l machineLine) Set(high bool) error {
	l.pin.Set(high)
	return nil
}

package outpin

import (
	"errors"
	"strconv"
	"sync"
)

// SimDriver is an in-memory Driver. It remembers which pins were claimed and
// every level change written to them, so it can stand in for hardware in
// tests and dry runs.
type SimDriver struct {
	mu      sync.Mutex
	claimed map[int]*simLine
	// OnChange, if set, is called with the pin number and new level each
	// time a claimed line changes level.
	OnChange func(n int, l Level)
}

// Claim implements Driver. Each pin can only be claimed once.
func (d *SimDriver) Claim(n int) (Line, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.claimed == nil {
		d.claimed = make(map[int]*simLine)
	}
	if _, ok := d.claimed[n]; ok {
		return nil, errors.New("sim: pin " + strconv.Itoa(n) + " already claimed")
	}
	l := &simLine{d: d, n: n}
	d.claimed[n] = l
	return l, nil
}

// Level returns the current level of pin n and whether it has been claimed.
func (d *SimDriver) Level(n int) (Level, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.claimed[n]
	if !ok {
		return Low, false
	}
	return l.level, true
}

// Writes returns how many times pin n has been written, including writes
// that did not change the level.
func (d *SimDriver) Writes(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.claimed[n]; ok {
		return l.writes
	}
	return 0
}

// History returns the sequence of levels pin n has changed to, starting
// with the level it was first written to.
func (d *SimDriver) History(n int) []Level {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.claimed[n]
	if !ok {
		return nil
	}
	return append([]Level(nil), l.history...)
}

type simLine struct {
	d       *SimDriver
	n       int
	level   Level
	writes  int
	history []Level
}

func (l *simLine) Set(high bool) error {
	l.d.mu.Lock()
	l.writes++
	changed := l.writes == 1 || l.level != Level(high)
	l.level = Level(high)
	if changed {
		l.history = append(l.history, l.level)
	}
	onChange := l.d.OnChange
	l.d.mu.Unlock()

	if changed && onChange != nil {
		onChange(l.n, Level(high))
	}
	return nil
}

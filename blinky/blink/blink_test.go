package blink

import (
	"runtime"
	"testing"
	"time"

	"github.com/Mosiwi/Mosiwi-basic-learning-kit/blinky/outpin"
)

var pico = outpin.Board{NumPins: 30, Reserved: []int{23, 24, 29}}

// fakeClock advances simulated time on Sleep. Once the horizon is reached it
// stops the calling goroutine, which is how tests end Run.
type fakeClock struct {
	now     time.Duration
	horizon time.Duration
	sleeps  []time.Duration
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now += d
	if c.horizon > 0 && c.now >= c.horizon {
		runtime.Goexit()
	}
}

type transition struct {
	at    time.Duration
	level outpin.Level
}

// newRecorded returns a blinker on pin n whose level changes are stamped
// with the fake clock's time. The level written by Initialize is not
// recorded.
func newRecorded(t *testing.T, n int, clk *fakeClock) (*Blinker, *outpin.SimDriver, *[]transition) {
	t.Helper()
	d := new(outpin.SimDriver)
	p, err := outpin.Initialize(d, pico, n)
	if err != nil {
		t.Fatalf("Initialize(%d): %v", n, err)
	}
	var log []transition
	d.OnChange = func(_ int, l outpin.Level) {
		log = append(log, transition{clk.now, l})
	}
	return &Blinker{Pin: p, Clock: clk}, d, &log
}

// run calls Run on a new goroutine and waits for the clock to stop it.
func run(b *Blinker) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Run()
	}()
	<-done
}

func TestStepCycle(t *testing.T) {
	clk := new(fakeClock)
	b, d, _ := newRecorded(t, 25, clk)

	if b.State() != On {
		t.Fatalf("initial state = %s, want on", b.State())
	}
	want := []struct {
		level outpin.Level
		next  State
	}{
		{outpin.High, Off},
		{outpin.Low, On},
		{outpin.High, Off},
		{outpin.Low, On},
	}
	for i, w := range want {
		b.Step()
		if l, _ := d.Level(25); l != w.level {
			t.Errorf("step %d: level = %s, want %s", i, l, w.level)
		}
		if b.State() != w.next {
			t.Errorf("step %d: next state = %s, want %s", i, b.State(), w.next)
		}
	}
	for i, s := range clk.sleeps {
		if s != time.Second {
			t.Errorf("sleep %d = %s, want 1s", i, s)
		}
	}
}

func TestRunFourSeconds(t *testing.T) {
	clk := &fakeClock{horizon: 4 * time.Second}
	b, d, log := newRecorded(t, 25, clk)

	run(b)

	want := []transition{
		{0, outpin.High},
		{1000 * time.Millisecond, outpin.Low},
		{2000 * time.Millisecond, outpin.High},
		{3000 * time.Millisecond, outpin.Low},
	}
	if len(*log) != len(want) {
		t.Fatalf("transitions = %v, want %v", *log, want)
	}
	for i, w := range want {
		if (*log)[i] != w {
			t.Errorf("transition %d = %v, want %v", i, (*log)[i], w)
		}
	}
	if clk.now != 4*time.Second {
		t.Errorf("clock stopped at %s, want 4s", clk.now)
	}
	if l, _ := d.Level(25); l != outpin.Low {
		t.Errorf("level at 4s = %s, want LOW", l)
	}
}

func TestRunTransitionSpacing(t *testing.T) {
	clk := &fakeClock{horizon: 30 * time.Second}
	b, _, log := newRecorded(t, 15, clk)

	run(b)

	if len(*log) != 30 {
		t.Fatalf("got %d transitions in 30s, want 30", len(*log))
	}
	for i := 1; i < len(*log); i++ {
		prev, cur := (*log)[i-1], (*log)[i]
		if gap := cur.at - prev.at; gap < time.Second {
			t.Errorf("transition %d came %s after the previous one, want >= 1s", i, gap)
		}
		if cur.level == prev.level {
			t.Errorf("transition %d repeated level %s", i, cur.level)
		}
	}
}

func TestCustomPeriod(t *testing.T) {
	clk := new(fakeClock)
	b, _, _ := newRecorded(t, 25, clk)
	b.Period = 250 * time.Millisecond

	b.Step()
	b.Step()
	if clk.now != 500*time.Millisecond {
		t.Errorf("two steps took %s, want 500ms", clk.now)
	}
}

package ui

import (
	"time"
)

// Ticker is a Clock that sleeps until the next frame is due. Pace divides the
// requested frame rate, so a pace of 10 plays ten times slower.
type Ticker struct {
	Pace float64

	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewTicker(pace float64) *Ticker {
	if pace <= 0 {
		pace = 1
	}
	return &Ticker{
		Pace:  pace,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Frame returns the frame duration for fps at the ticker's pace
func (t *Ticker) Frame(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Duration(float64(time.Second) * t.Pace / float64(fps))
}

// Tick blocks until the next frame boundary. After a long stall the schedule
// restarts from now instead of rushing to catch up.
func (t *Ticker) Tick(fps int) {
	frame := t.Frame(fps)
	now := t.now()
	if t.next.IsZero() || now.Sub(t.next) > frame {
		t.next = now
	}
	t.next = t.next.Add(frame)
	if d := t.next.Sub(now); d > 0 {
		t.sleep(d)
	}
}

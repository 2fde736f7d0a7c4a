package ui

import (
	"testing"
	"time"
)

func TestMenuChoiceAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want MenuChoice
	}{
		{"restart centre", 200, 475, Restart},
		{"quit centre", 600, 475, Quit},
		{"restart left border", 150, 475, NoChoice},
		{"restart right border", 250, 475, NoChoice},
		{"quit top border", 600, 450, NoChoice},
		{"quit bottom border", 600, 500, NoChoice},
		{"between buttons", 400, 475, NoChoice},
		{"title", 400, 300, NoChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MenuChoiceAt(tt.x, tt.y); got != tt.want {
				t.Errorf("MenuChoiceAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTickerPacing(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	tk := NewTicker(1)
	tk.now = func() time.Time { return now }
	tk.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}

	tk.Tick(100)
	tk.Tick(100)
	now = now.Add(3 * time.Millisecond)
	tk.Tick(100)

	want := []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 7 * time.Millisecond}
	if len(slept) != len(want) {
		t.Fatalf("Expected %d sleeps, got %v", len(want), slept)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("Sleep %d: expected %v, got %v", i, want[i], slept[i])
		}
	}
}

func TestTickerResetsAfterStall(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	tk := NewTicker(2)
	tk.now = func() time.Time { return now }
	tk.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}

	tk.Tick(100)
	now = now.Add(time.Second)
	tk.Tick(100)

	if len(slept) != 2 || slept[1] != 20*time.Millisecond {
		t.Errorf("Expected a full frame after a stall, got %v", slept)
	}
}

package utils

import (
	"testing"
	"time"
)

func TestStats_Update(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 4, 2, 100*time.Millisecond)

	if s.AveragePopulation != 100 {
		t.Fatalf("first AveragePopulation = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 5, 3, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.Population != 200 || s.Recognized != 5 || s.Symmetrical != 3 {
		t.Fatalf("stats = %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("a zero duration must not reset the rate")
	}
}

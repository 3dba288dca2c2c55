package ramp

import "testing"

func TestLevelsSnapsOnZeroSteps(t *testing.T) {
	got := Levels(10, 200, 0)
	if len(got) != 1 || got[0] != 200 {
		t.Fatalf("Levels(10,200,0) = %v", got)
	}
}

func TestLevelsMonotonicUp(t *testing.T) {
	got := Levels(0, 255, 8)
	if len(got) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(got))
	}
	prev := -1
	for _, l := range got {
		if int(l) < prev {
			t.Fatalf("ramp not monotonic: %v", got)
		}
		prev = int(l)
	}
	if got[len(got)-1] != 255 {
		t.Fatalf("ramp must end at target, got %v", got)
	}
}

func TestLevelsDown(t *testing.T) {
	got := Levels(255, 0, 4)
	if got[len(got)-1] != 0 {
		t.Fatalf("ramp must end at 0, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] > got[i-1] {
			t.Fatalf("descending ramp increased: %v", got)
		}
	}
}

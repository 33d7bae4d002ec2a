package utils

import (
	"reflect"
	"testing"
)

func TestPointerTrackerSequence(t *testing.T) {
	tracker := NewPointerTracker()

	tests := []struct {
		name    string
		samples []PointerSample
		want    []PointerEvent
	}{
		{
			name:    "press",
			samples: []PointerSample{{ID: 0, X: 10, Y: 20}},
			want:    []PointerEvent{{Type: PointerDown, ID: 0, X: 10, Y: 20}},
		},
		{
			name:    "hold still",
			samples: []PointerSample{{ID: 0, X: 10, Y: 20}},
			want:    []PointerEvent{},
		},
		{
			name:    "move and second finger",
			samples: []PointerSample{{ID: 1, X: 500, Y: 100}, {ID: 0, X: 15, Y: 20}},
			want: []PointerEvent{
				{Type: PointerMove, ID: 0, X: 15, Y: 20},
				{Type: PointerDown, ID: 1, X: 500, Y: 100},
			},
		},
		{
			name:    "swap fingers",
			samples: []PointerSample{{ID: 1, X: 500, Y: 100}, {ID: 2, X: 30, Y: 30}},
			want: []PointerEvent{
				{Type: PointerUp, ID: 0, X: 15, Y: 20},
				{Type: PointerDown, ID: 2, X: 30, Y: 30},
			},
		},
		{
			name:    "release all",
			samples: nil,
			want: []PointerEvent{
				{Type: PointerUp, ID: 1, X: 500, Y: 100},
				{Type: PointerUp, ID: 2, X: 30, Y: 30},
			},
		},
	}

	for _, tt := range tests {
		got := tracker.Update(tt.samples)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
	if tracker.Active() != 0 {
		t.Errorf("Active: got %d, want 0", tracker.Active())
	}
}

func TestPointerTrackerReset(t *testing.T) {
	tracker := NewPointerTracker()
	tracker.Update([]PointerSample{{ID: MousePointerID, X: 1, Y: 2}})

	events := tracker.Reset()
	if len(events) != 1 || events[0].Type != PointerUp || events[0].ID != MousePointerID {
		t.Errorf("Reset: got %+v", events)
	}
	if len(tracker.Reset()) != 0 {
		t.Error("second Reset should be empty")
	}
}

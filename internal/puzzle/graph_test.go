package puzzle

import (
	"errors"
	"testing"
)

func TestTopoSort(t *testing.T) {
	tests := []struct {
		name     string
		requires [][]int
		want     []int
	}{
		{"empty", nil, []int{}},
		{"independent", [][]int{nil, nil, nil}, []int{0, 1, 2}},
		{"chain reversed", [][]int{{1}, {2}, nil}, []int{2, 1, 0}},
		{"diamond", [][]int{nil, {0}, {0}, {1, 2}}, []int{0, 1, 2, 3}},
		{"lowest ready first", [][]int{{2}, nil, nil}, []int{1, 2, 0}},
		{"out of range ignored", [][]int{{7}, {-1}}, []int{0, 1}},
	}

	for _, tt := range tests {
		got, err := TopoSort(tt.requires)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%s: TopoSort = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: TopoSort = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestTopoSortDetectsCycle(t *testing.T) {
	_, err := TopoSort([][]int{{1}, {2}, {0}, nil})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("TopoSort error = %v, want ErrCycle", err)
	}

	_, err = TopoSort([][]int{{0}})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("self loop error = %v, want ErrCycle", err)
	}
}

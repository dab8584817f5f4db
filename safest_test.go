package decide

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestPickSafest(t *testing.T) {
	testCases := []struct {
		name          string
		input         []Entry
		expectedPair  ActionPair
		expectedScore float64
	}{
		{
			name:          "minimax",
			input:         []Entry{e("A", "X", 5), e("A", "Y", 5), e("B", "X", 2), e("B", "Y", 8)},
			expectedPair:  ActionPair{"A", "X"},
			expectedScore: 5,
		},
		{
			name:          "equal worst cases keep the first bot action",
			input:         []Entry{e("A", "X", 2), e("A", "Y", 5), e("B", "X", 5), e("B", "Y", 2)},
			expectedPair:  ActionPair{"A", "X"},
			expectedScore: 2,
		},
		{
			name:          "falls back to the unfiltered table",
			input:         []Entry{e("A", "X", 1), e("A", "Y", 2), e("B", "X", 1), e("B", "Y", 2)},
			expectedPair:  ActionPair{"A", "X"},
			expectedScore: 1,
		},
		{
			name:          "guaranteed opponent action ignored",
			input:         []Entry{e("A", "X", -10), e("A", "Y", 1), e("B", "X", -10), e("B", "Y", 3)},
			expectedPair:  ActionPair{"B", "Y"},
			expectedScore: 3,
		},
		{
			name:          "undefined scores are not a worst case",
			input:         []Entry{e("A", "X", nan), e("A", "Y", nan), e("B", "X", 1), e("B", "Y", -3)},
			expectedPair:  ActionPair{"B", "Y"},
			expectedScore: -3,
		},
		{
			name:          "undefined score skipped within an action",
			input:         []Entry{e("A", "X", nan), e("A", "Y", 4), e("B", "X", 1), e("B", "Y", 3)},
			expectedPair:  ActionPair{"A", "Y"},
			expectedScore: 4,
		},
	}

	for _, tc := range testCases {
		pair, score, err := PickSafest(newTable(tc.input...))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if pair != tc.expectedPair || score != tc.expectedScore {
			t.Errorf("%s: got %v, %v, expected %v, %v",
				tc.name, pair, score, tc.expectedPair, tc.expectedScore)
		}
	}
}

func TestPickSafestAllUndefined(t *testing.T) {
	table := newTable(e("A", "X", nan), e("B", "X", nan))
	pair, score, err := PickSafest(table)
	if err != nil {
		t.Fatal(err)
	}
	if pair != (ActionPair{"A", "X"}) || !math.IsInf(score, -1) {
		t.Errorf("got %v, %v", pair, score)
	}
}

func TestPickSafestEmpty(t *testing.T) {
	if _, _, err := PickSafest(NewPayoffTable()); errors.Cause(err) != ErrEmptyPayoffTable {
		t.Errorf("expected ErrEmptyPayoffTable, got %v", err)
	}
}

func TestDecideFromSafest(t *testing.T) {
	d := NewDecider(nil, nil, NopLogger{})
	table := newTable(e("A", "X", 5), e("A", "Y", 5), e("B", "X", 2), e("B", "Y", 8))
	action, err := d.DecideFromSafest(table)
	if err != nil {
		t.Fatal(err)
	}
	if action != "A" {
		t.Errorf("got %v, expected %v", action, "A")
	}
}

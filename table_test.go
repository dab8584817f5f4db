package decide

import (
	"math"
	"reflect"
	"testing"
)

var nan = math.NaN()

func newTable(entries ...Entry) *PayoffTable {
	return NewPayoffTableFromEntries(entries)
}

func e(bot, opponent Action, score float64) Entry {
	return Entry{ActionPair{bot, opponent}, score}
}

// entriesEqual compares entries in order, treating NaN scores as equal.
func entriesEqual(x, y []Entry) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].ActionPair != y[i].ActionPair {
			return false
		}
		if x[i].Score != y[i].Score && !(math.IsNaN(x[i].Score) && math.IsNaN(y[i].Score)) {
			return false
		}
	}
	return true
}

func TestPayoffTableOrder(t *testing.T) {
	table := newTable(
		e("B", "Y", 1),
		e("A", "X", 2),
		e("B", "X", 3),
		e("A", "Y", 4),
	)

	if !reflect.DeepEqual(table.BotActions(), []Action{"B", "A"}) {
		t.Errorf("got bot actions %v", table.BotActions())
	}
	if !reflect.DeepEqual(table.OpponentActions(), []Action{"Y", "X"}) {
		t.Errorf("got opponent actions %v", table.OpponentActions())
	}
	if table.Len() != 4 {
		t.Errorf("table has len %d, expected %d", table.Len(), 4)
	}
}

func TestPayoffTableSetOverwrites(t *testing.T) {
	table := newTable(e("A", "X", 1), e("B", "X", 2))
	table.Set("A", "X", 5)

	expected := []Entry{e("A", "X", 5), e("B", "X", 2)}
	if !entriesEqual(table.Entries(), expected) {
		t.Errorf("got %v, expected %v", table.Entries(), expected)
	}

	if score, ok := table.Get("A", "X"); !ok || score != 5 {
		t.Errorf("Get returned %v, %v", score, ok)
	}
	if _, ok := table.Get("A", "Y"); ok {
		t.Error("Get found a missing pair")
	}
}

func TestNilPayoffTable(t *testing.T) {
	var table *PayoffTable
	if !table.IsEmpty() {
		t.Error("nil table should be empty")
	}
	if len(table.BotActions()) != 0 || len(table.Entries()) != 0 {
		t.Error("nil table should have no actions or entries")
	}
}

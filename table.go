package decide

import (
	"bytes"
	"fmt"
)

// Action identifies a move available to one player in a single turn.
type Action string

// ActionPair is one (bot action, opponent action) combination.
type ActionPair struct {
	Bot      Action
	Opponent Action
}

func (p ActionPair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Bot, p.Opponent)
}

// Entry is a single scored cell of a PayoffTable.
type Entry struct {
	ActionPair
	// Score is the outcome to the bot. NaN means the outcome could not be computed.
	Score float64
}

// PayoffTable maps each (bot action, opponent action) pair to a score.
//
// Iteration order is insertion order and is significant: every tie-break
// in this package resolves to the first-seen entry. A table must not be
// modified once it has been handed to a decision function.
type PayoffTable struct {
	entries []Entry
	index   map[ActionPair]int
}

func NewPayoffTable() *PayoffTable {
	return &PayoffTable{
		index: make(map[ActionPair]int),
	}
}

// NewPayoffTableFromEntries builds a table from entries in order.
// Later entries for a repeated pair overwrite the score of the earlier one
// but keep its position.
func NewPayoffTableFromEntries(entries []Entry) *PayoffTable {
	t := NewPayoffTable()
	for _, e := range entries {
		t.Set(e.Bot, e.Opponent, e.Score)
	}
	return t
}

// Set records the score of the given pair.
func (t *PayoffTable) Set(bot, opponent Action, score float64) {
	pair := ActionPair{bot, opponent}
	if i, ok := t.index[pair]; ok {
		t.entries[i].Score = score
		return
	}

	t.index[pair] = len(t.entries)
	t.entries = append(t.entries, Entry{pair, score})
}

func (t *PayoffTable) Get(bot, opponent Action) (float64, bool) {
	if t == nil {
		return 0, false
	}

	i, ok := t.index[ActionPair{bot, opponent}]
	if !ok {
		return 0, false
	}
	return t.entries[i].Score, true
}

func (t *PayoffTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *PayoffTable) IsEmpty() bool {
	return t.Len() == 0
}

// Entries returns a copy of the table's entries in insertion order.
func (t *PayoffTable) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// BotActions returns the distinct bot actions in order of first appearance.
func (t *PayoffTable) BotActions() []Action {
	return t.distinct(func(p ActionPair) Action { return p.Bot })
}

// OpponentActions returns the distinct opponent actions in order of first appearance.
func (t *PayoffTable) OpponentActions() []Action {
	return t.distinct(func(p ActionPair) Action { return p.Opponent })
}

func (t *PayoffTable) distinct(key func(ActionPair) Action) []Action {
	if t == nil {
		return nil
	}

	seen := make(map[Action]struct{})
	var result []Action
	for _, e := range t.entries {
		a := key(e.ActionPair)
		if _, ok := seen[a]; !ok {
			seen[a] = struct{}{}
			result = append(result, a)
		}
	}
	return result
}

// subset returns a new table with the entries for which keep returns true.
func (t *PayoffTable) subset(keep func(Entry) bool) *PayoffTable {
	result := NewPayoffTable()
	for _, e := range t.entries {
		if keep(e) {
			result.Set(e.Bot, e.Opponent, e.Score)
		}
	}
	return result
}

func (t *PayoffTable) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range t.Entries() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v: %v", e.ActionPair, e.Score)
	}
	buf.WriteString("}")
	return buf.String()
}

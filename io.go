package decide

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// entryJSON is the file representation of an Entry. A null score is NaN.
type entryJSON struct {
	Bot      Action   `json:"bot"`
	Opponent Action   `json:"opponent"`
	Score    *float64 `json:"score"`
}

// MarshalJSON encodes the table as an array of entries in order.
func (t *PayoffTable) MarshalJSON() ([]byte, error) {
	entries := make([]entryJSON, 0, t.Len())
	for _, e := range t.Entries() {
		var score *float64
		if !math.IsNaN(e.Score) {
			s := e.Score
			score = &s
		}
		entries = append(entries, entryJSON{e.Bot, e.Opponent, score})
	}
	return json.Marshal(entries)
}

func (t *PayoffTable) UnmarshalJSON(buf []byte) error {
	var entries []entryJSON
	if err := json.Unmarshal(buf, &entries); err != nil {
		return err
	}

	*t = *NewPayoffTable()
	for i, e := range entries {
		if e.Bot == "" || e.Opponent == "" {
			return errors.Errorf("entry %d has an empty action: bot %q, opponent %q",
				i, e.Bot, e.Opponent)
		}

		score := math.NaN()
		if e.Score != nil {
			score = *e.Score
		}
		t.Set(e.Bot, e.Opponent, score)
	}
	return nil
}

// ReadPayoffTable decodes a JSON payoff table from r.
func ReadPayoffTable(r io.Reader) (*PayoffTable, error) {
	t := NewPayoffTable()
	if err := json.NewDecoder(r).Decode(t); err != nil {
		return nil, errors.Wrap(err, "error decoding payoff table")
	}
	return t, nil
}

// LoadPayoffTable reads a JSON payoff table from filename.
// Files ending in .gz are decompressed.
func LoadPayoffTable(filename string) (*PayoffTable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "error opening %v", filename)
		}
		defer gz.Close()
		r = gz
	}

	t, err := ReadPayoffTable(r)
	return t, errors.Wrapf(err, "error loading %v", filename)
}

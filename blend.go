package decide

// DecideRandomFromAverageAndSafest draws uniformly from the best-average
// candidates padded with as many copies of the safest action, so the safest
// action takes up at least half of the pool.
func (d *Decider) DecideRandomFromAverageAndSafest(t *PayoffTable) (Action, error) {
	if t.IsEmpty() {
		return "", ErrEmptyPayoffTable
	}

	t = filterOrOriginal(t)
	options, err := d.DecideFromBestAverages(t, d.averageLimit())
	if err != nil {
		return "", err
	}

	safest, err := d.DecideFromSafest(t)
	if err != nil {
		return "", err
	}

	n := len(options)
	for i := 0; i < n; i++ {
		options = append(options, safest)
	}

	return chooseUniform(d.rng(), options), nil
}

package rand

import (
	"fmt"
	"sort"
)

// WeightedPicker samples items with probability proportional to their
// configured weight, driven by a Random stream. The item order is fixed by
// sorting the ids once at construction: map iteration order must never
// leak into the draw sequence, or identical seeds would produce different
// worlds between runs.
type WeightedPicker struct {
	ids   []string
	cum   []float64
	total float64
	r     *Random
}

// NewWeightedPicker builds a picker over the passed weight table. Weights
// must be positive; a zero or negative weight is a configuration error.
func NewWeightedPicker(weights map[string]float64, r *Random) (*WeightedPicker, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("rand: weighted picker needs at least one item")
	}
	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	p := &WeightedPicker{ids: ids, cum: make([]float64, len(ids)), r: r}
	for i, id := range ids {
		w := weights[id]
		if w <= 0 {
			return nil, fmt.Errorf("rand: weight for %q must be positive, got %v", id, w)
		}
		p.total += w
		p.cum[i] = p.total
	}
	return p, nil
}

// Pick draws the next item id by cumulative-weight inversion.
func (p *WeightedPicker) Pick() string {
	target := p.r.Float64() * p.total
	i := sort.Search(len(p.cum), func(i int) bool { return p.cum[i] > target })
	if i >= len(p.ids) {
		i = len(p.ids) - 1
	}
	return p.ids[i]
}

// Reweighted returns a picker over the same items with the passed weight
// overrides applied, drawing from the supplied stream. Items absent from
// overrides keep their original weight. Used for local, position-salted
// boosts that must not disturb the shared stream.
func (p *WeightedPicker) Reweighted(overrides map[string]float64, r *Random) (*WeightedPicker, error) {
	weights := make(map[string]float64, len(p.ids))
	for i, id := range p.ids {
		w := p.cum[i]
		if i > 0 {
			w -= p.cum[i-1]
		}
		weights[id] = w
	}
	for id, w := range overrides {
		if _, ok := weights[id]; ok {
			weights[id] = w
		}
	}
	return NewWeightedPicker(weights, r)
}

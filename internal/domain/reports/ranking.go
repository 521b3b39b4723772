package reports

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Metric selects which aggregate a ranking is ordered by.
type Metric int

const (
	ByCount Metric = iota
	BySum
)

// Aggregate is the per-key result of GroupBy.
type Aggregate struct {
	Count int
	Sum   decimal.Decimal
}

// Ranked is one key with its aggregate.
type Ranked[K comparable] struct {
	Key K
	Aggregate
}

// Groups holds aggregates per key in the order keys were first seen.
type Groups[K comparable] struct {
	order []K
	aggs  map[K]*Aggregate
}

// GroupBy counts items per key and sums weight per key.
// key returns false to skip an item; a nil weight only counts.
func GroupBy[T any, K comparable](items []T, key func(T) (K, bool), weight func(T) decimal.Decimal) *Groups[K] {
	g := &Groups[K]{aggs: make(map[K]*Aggregate)}
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		agg, seen := g.aggs[k]
		if !seen {
			agg = &Aggregate{Sum: decimal.Zero}
			g.aggs[k] = agg
			g.order = append(g.order, k)
		}
		agg.Count++
		if weight != nil {
			agg.Sum = agg.Sum.Add(weight(item))
		}
	}
	return g
}

// Len returns the number of distinct keys.
func (g *Groups[K]) Len() int { return len(g.order) }

// Get returns the aggregate for k.
func (g *Groups[K]) Get(k K) (Aggregate, bool) {
	agg, ok := g.aggs[k]
	if !ok {
		return Aggregate{Sum: decimal.Zero}, false
	}
	return *agg, true
}

// Keys returns the distinct keys in encounter order.
func (g *Groups[K]) Keys() []K { return slices.Clone(g.order) }

// Filter returns a new Groups with only the keys keep accepts, order preserved.
func (g *Groups[K]) Filter(keep func(K) bool) *Groups[K] {
	out := &Groups[K]{aggs: make(map[K]*Aggregate, len(g.aggs))}
	for _, k := range g.order {
		if !keep(k) {
			continue
		}
		agg := *g.aggs[k]
		out.aggs[k] = &agg
		out.order = append(out.order, k)
	}
	return out
}

// Ranked returns all keys with their aggregates in encounter order.
func (g *Groups[K]) Ranked() []Ranked[K] {
	out := make([]Ranked[K], 0, len(g.order))
	for _, k := range g.order {
		out = append(out, Ranked[K]{Key: k, Aggregate: *g.aggs[k]})
	}
	return out
}

// Top returns at most n keys sorted descending by the metric.
// Equal aggregates keep encounter order.
func (g *Groups[K]) Top(n int, by Metric) []Ranked[K] {
	return TopN(g.Ranked(), n, func(a, b Ranked[K]) int {
		if by == ByCount {
			return b.Count - a.Count
		}
		return b.Sum.Cmp(a.Sum)
	})
}

// TopN stable-sorts a copy of items with cmp and keeps the first n.
// The result is never nil.
func TopN[T any](items []T, n int, cmp func(a, b T) int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmp)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Descending orders decimals from largest to smallest, for use with TopN.
func Descending(a, b decimal.Decimal) int {
	return b.Cmp(a)
}

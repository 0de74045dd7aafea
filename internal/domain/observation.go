package domain

import "time"

// Observation is one persisted price reading for a pair. Rows are append-only;
// ObservedAt is assigned by the database at insertion.
type Observation struct {
	SymbolID   string
	ConvertID  string
	Price      float64
	ObservedAt time.Time
}

func (o Observation) Pair() Pair { return Pair{SymbolID: o.SymbolID, ConvertID: o.ConvertID} }

// FreshAt reports whether the observation is strictly younger than window at now.
func (o Observation) FreshAt(now time.Time, window time.Duration) bool {
	return o.ObservedAt.After(now.Add(-window))
}

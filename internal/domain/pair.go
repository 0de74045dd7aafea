package domain

import (
	"fmt"
	"strings"
)

// Pair identifies a base asset and the asset it is quoted in, both as
// opaque catalog ids of the upstream provider.
type Pair struct {
	SymbolID  string
	ConvertID string
}

func NewPair(symbolID, convertID string) Pair {
	return Pair{SymbolID: strings.TrimSpace(symbolID), ConvertID: strings.TrimSpace(convertID)}
}

// Key is stable per pair and safe to use in cache keys.
func (p Pair) Key() string { return p.SymbolID + ":" + p.ConvertID }

func (p Pair) Validate() error {
	if p.SymbolID == "" || p.ConvertID == "" {
		return fmt.Errorf("%w: symbol_id and convert_id are required", ErrInvalidPair)
	}
	return nil
}

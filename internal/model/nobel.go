package model

import "encoding/json"

// Package model contains the transient payload shapes passed between layers.
// Upstream JSON is carried as json.RawMessage so it is re-emitted byte for byte.

// EmptyList is returned wherever the upstream yields no body or null.
var EmptyList = json.RawMessage(`[]`)

// PrizeList wraps the upstream prize sequence under its outer key.
type PrizeList struct {
	NobelPrizes json.RawMessage `json:"nobelPrizes" swaggertype:"array,object"`
}

package entity

// Source tags which physical store served a record, so callers and any
// future reconciliation job can tell primary rows from process-local ones.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

package audit

import "time"

// Query type tags recorded with each entry.
const (
	QueryTypeSearch   = "Search"
	QueryTypeAdvanced = "AdvancedQuery"
)

// Entry is one recorded query execution. Entries are append-only: they
// are never updated, and deleted only by Clear.
type Entry struct {
	// EntryID is a unique identifier for this entry (UUID).
	EntryID string `json:"entry_id"`

	// QueryType is the query mode tag, QueryTypeSearch or
	// QueryTypeAdvanced.
	QueryType string `json:"query_type"`

	// Params holds the query parameters serialized as JSON.
	Params string `json:"query_params"`

	// CreatedDate is when the query was executed.
	CreatedDate time.Time `json:"created_date"`

	// ResultCount is the number of assets the query returned.
	ResultCount int `json:"results_count"`
}

/*
Package query implements search and multi-criteria filtering over the
asset collection.

Both query modes read a repository snapshot and never mutate it. After
computing a result set, the engine records the execution in the audit
log; logging is best-effort and never fails the query.
*/
package query

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/afmdw/asset-hub/internal/audit"
	"github.com/afmdw/asset-hub/internal/model"
	"github.com/afmdw/asset-hub/internal/repository"
)

// SearchFields lists the fields the simple search accepts.
var SearchFields = []string{"id", "name", "owner", "status", "location", "type"}

// Sink receives a record of each executed query.
type Sink interface {
	Append(entry audit.Entry) error
}

// Engine runs read-only queries over the asset collection.
type Engine struct {
	repo *repository.Repository
	sink Sink
}

// New creates an Engine. The sink may be nil, in which case queries run
// unlogged.
func New(repo *repository.Repository, sink Sink) *Engine {
	return &Engine{repo: repo, sink: sink}
}

// Search returns the assets whose chosen field contains term,
// case-insensitively, in original collection order. An unknown field or
// blank term is a validation error, not an empty result.
func (e *Engine) Search(field, term string) ([]model.Asset, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if strings.TrimSpace(term) == "" {
		return nil, &repository.ValidationError{Field: "term", Message: "search term is required"}
	}
	if !isSearchField(field) {
		return nil, &repository.ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("unknown search field %q (one of: %s)", field, strings.Join(SearchFields, ", ")),
		}
	}

	needle := strings.ToLower(term)
	results := []model.Asset{}
	for _, a := range e.repo.List() {
		if strings.Contains(strings.ToLower(fieldValue(a, field)), needle) {
			results = append(results, a)
		}
	}

	e.record(audit.QueryTypeSearch, map[string]string{"field": field, "term": term}, len(results))
	return results, nil
}

// Criteria is the advanced filter configuration. "All" or blank
// selectors leave that dimension unconstrained. Cost bounds are free
// text and parsed leniently: a malformed bound is ignored for that
// bound only, never failing the whole query.
type Criteria struct {
	Status  string
	Type    string
	Owner   string
	MinCost string
	MaxCost string
}

// Filter returns the assets matching every present criterion, ANDed, in
// original collection order. Status, type, and owner match exactly;
// cost bounds are inclusive on both ends.
func (e *Engine) Filter(c Criteria) []model.Asset {
	results := e.repo.List()

	if sel := c.Status; selected(sel) {
		results = keep(results, func(a model.Asset) bool { return a.Status == sel })
	}
	if sel := c.Type; selected(sel) {
		results = keep(results, func(a model.Asset) bool { return a.Type == sel })
	}
	if sel := c.Owner; selected(sel) {
		results = keep(results, func(a model.Asset) bool { return a.Owner == sel })
	}
	if min, ok := parseBound(c.MinCost); ok {
		results = keep(results, func(a model.Asset) bool { return model.ParseCost(a.Cost) >= min })
	}
	if max, ok := parseBound(c.MaxCost); ok {
		results = keep(results, func(a model.Asset) bool { return model.ParseCost(a.Cost) <= max })
	}

	e.record(audit.QueryTypeAdvanced, map[string]string{
		"status":   c.Status,
		"type":     c.Type,
		"owner":    c.Owner,
		"min_cost": c.MinCost,
		"max_cost": c.MaxCost,
	}, len(results))
	return results
}

func isSearchField(field string) bool {
	for _, f := range SearchFields {
		if f == field {
			return true
		}
	}
	return false
}

func fieldValue(a model.Asset, field string) string {
	switch field {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "owner":
		return a.Owner
	case "status":
		return a.Status
	case "location":
		return a.Location
	case "type":
		return a.Type
	}
	return ""
}

func selected(sel string) bool {
	return sel != "" && sel != "All"
}

// parseBound parses a cost bound entered as free text. Blank or
// non-numeric input means the bound is not applied.
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func keep(assets []model.Asset, match func(model.Asset) bool) []model.Asset {
	out := []model.Asset{}
	for _, a := range assets {
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}

// record appends one audit entry after the result set is computed. A
// sink failure is logged, never propagated.
func (e *Engine) record(queryType string, params map[string]string, count int) {
	if e.sink == nil {
		return
	}

	raw, err := json.Marshal(params)
	if err != nil {
		raw = []byte("{}")
	}

	entry := audit.Entry{
		EntryID:     uuid.NewString(),
		QueryType:   queryType,
		Params:      string(raw),
		CreatedDate: time.Now(),
		ResultCount: count,
	}

	if err := e.sink.Append(entry); err != nil {
		log.Printf("Warning: failed to log query: %v", err)
	}
}

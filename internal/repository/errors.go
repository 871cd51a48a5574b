package repository

import "fmt"

// ValidationError reports invalid caller input. The collection is left
// untouched; the caller corrects the input and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DuplicateIDError reports an asset ID that already exists in the
// collection. IDs are matched case-sensitively.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("asset ID already exists: %s", e.ID)
}

// DuplicateOwnerError reports an owner name already present in the
// registry.
type DuplicateOwnerError struct {
	Name string
}

func (e *DuplicateOwnerError) Error() string {
	return fmt.Sprintf("owner already exists: %s", e.Name)
}

// NotFoundError reports a lookup for an ID or name that no longer
// exists, typically a stale selection.
type NotFoundError struct {
	Kind string // "asset" or "owner"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

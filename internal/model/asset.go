/*
Package model defines the asset and owner records tracked by asset-hub.

Records are persisted as flat JSON with snake_case field names so data
files written by earlier versions of the system load unchanged.
*/
package model

// AssetTypes lists the recognized asset classifications.
var AssetTypes = []string{"Hardware", "Software", "Network", "Storage", "Peripheral", "Other"}

// AssetStatuses lists the recognized lifecycle states.
var AssetStatuses = []string{"Active", "Inactive", "In Repair", "Decommissioned", "On Hold"}

// FieldNames lists the persisted asset fields in declaration order.
// Tabular exports use this as the header row.
var FieldNames = []string{
	"id", "name", "type", "status", "owner", "location",
	"acquisition_date", "release_date", "cost", "warranty", "notes",
}

// Asset is a single tracked asset.
type Asset struct {
	// ID uniquely identifies the asset. Immutable after creation.
	ID string `json:"id"`

	// Name is the human-readable asset name.
	Name string `json:"name"`

	// Type is one of AssetTypes.
	Type string `json:"type"`

	// Status is one of AssetStatuses.
	Status string `json:"status"`

	// Owner is the owner name the asset is assigned to. The reference is
	// by name only and may point at an owner no longer in the registry.
	Owner string `json:"owner"`

	// Location is the physical or logical location of the asset.
	Location string `json:"location"`

	// AcquisitionDate is an ISO YYYY-MM-DD date.
	AcquisitionDate string `json:"acquisition_date"`

	// ReleaseDate is an ISO YYYY-MM-DD date, optional.
	ReleaseDate string `json:"release_date"`

	// Cost is the acquisition cost as entered. Kept as text; use
	// ParseCost when doing arithmetic.
	Cost string `json:"cost"`

	// Warranty is the warranty length in months, as entered. Kept as
	// text; use ParseWarrantyMonths.
	Warranty string `json:"warranty"`

	// Notes is free-form text.
	Notes string `json:"notes"`
}

// Values returns the field values in FieldNames order.
func (a Asset) Values() []string {
	return []string{
		a.ID, a.Name, a.Type, a.Status, a.Owner, a.Location,
		a.AcquisitionDate, a.ReleaseDate, a.Cost, a.Warranty, a.Notes,
	}
}

// Owner is a named custodian to whom assets may be assigned. Owners are
// keyed by name in the registry, so the record itself only carries the
// creation timestamp.
type Owner struct {
	// CreatedDate is when the owner was registered, in TimestampLayout.
	// Never mutated after creation.
	CreatedDate string `json:"created_date"`
}

package report

import (
	"time"

	"github.com/afmdw/asset-hub/internal/model"
)

// ExpiringSoonDays is the ExpiringSoon classification window: a
// warranty within this many days of expiry is flagged.
const ExpiringSoonDays = 90

// WarrantyItem is one classified asset with its computed expiry.
type WarrantyItem struct {
	Asset  model.Asset
	Expiry time.Time
	// Days until expiry; negative once expired.
	Days int
}

// WarrantyReport buckets the collection by warranty state. Assets whose
// acquisition date or warranty length cannot be parsed appear in no
// bucket.
type WarrantyReport struct {
	Valid        []WarrantyItem
	ExpiringSoon []WarrantyItem
	Expired      []WarrantyItem
}

// BuildWarranty classifies each asset by warranty expiry relative to
// today. Expiry is the acquisition date plus the warranty length in
// calendar months: Jan 31 plus one month is the last day of February,
// not March 2nd. Days are computed on midnight-normalized dates so the
// boundaries land on whole calendar days.
func BuildWarranty(assets []model.Asset, today time.Time) WarrantyReport {
	today = midnight(today)

	var rep WarrantyReport
	for _, a := range assets {
		acquired, ok := model.ParseDate(a.AcquisitionDate)
		if !ok {
			continue
		}
		months, ok := model.ParseWarrantyMonths(a.Warranty)
		if !ok {
			continue
		}

		expiry := addMonths(midnight(acquired), months)
		days := int(expiry.Sub(today).Hours() / 24)
		item := WarrantyItem{Asset: a, Expiry: expiry, Days: days}

		switch {
		case days < 0:
			rep.Expired = append(rep.Expired, item)
		case days <= ExpiringSoonDays:
			rep.ExpiringSoon = append(rep.ExpiringSoon, item)
		default:
			rep.Valid = append(rep.Valid, item)
		}
	}
	return rep
}

// addMonths advances a date by whole calendar months, clamping the day
// to the target month's length. time.AddDate normalizes overflow (Jan
// 31 + 1 month becomes March 2nd/3rd), which is not how warranty terms
// are read.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, time.Month(int(m)+months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// midnight normalizes a time to 00:00 UTC of its calendar date.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package report

import (
	"testing"
	"time"

	"github.com/afmdw/asset-hub/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWarrantyExpiredClassification(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Name: "Laptop", AcquisitionDate: "2024-01-01", Warranty: "12"},
	}

	rep := BuildWarranty(assets, date(2025, time.January, 15))

	if len(rep.Expired) != 1 {
		t.Fatalf("Expired = %d, want 1", len(rep.Expired))
	}
	item := rep.Expired[0]
	if !item.Expiry.Equal(date(2025, time.January, 1)) {
		t.Errorf("Expiry = %v, want 2025-01-01", item.Expiry)
	}
	if item.Days != -14 {
		t.Errorf("Days = %d, want -14", item.Days)
	}
}

func TestWarrantyBuckets(t *testing.T) {
	today := date(2025, time.June, 1)
	assets := []model.Asset{
		// Expires 2025-05-01, a month ago
		{ID: "EXP", AcquisitionDate: "2024-05-01", Warranty: "12"},
		// Expires 2025-08-01, 61 days out
		{ID: "SOON", AcquisitionDate: "2024-08-01", Warranty: "12"},
		// Expires 2026-06-01, well beyond the 90-day window
		{ID: "OK", AcquisitionDate: "2025-06-01", Warranty: "12"},
		// Expires today: still within the window, not expired
		{ID: "TODAY", AcquisitionDate: "2024-06-01", Warranty: "12"},
	}

	rep := BuildWarranty(assets, today)

	if len(rep.Expired) != 1 || rep.Expired[0].Asset.ID != "EXP" {
		t.Errorf("Expired = %+v", rep.Expired)
	}
	if len(rep.Valid) != 1 || rep.Valid[0].Asset.ID != "OK" {
		t.Errorf("Valid = %+v", rep.Valid)
	}
	if len(rep.ExpiringSoon) != 2 {
		t.Fatalf("ExpiringSoon = %d, want 2", len(rep.ExpiringSoon))
	}
	if rep.ExpiringSoon[1].Asset.ID != "TODAY" || rep.ExpiringSoon[1].Days != 0 {
		t.Errorf("boundary item = %+v", rep.ExpiringSoon[1])
	}
}

func TestWarrantySkipsUnparsableRecords(t *testing.T) {
	assets := []model.Asset{
		{ID: "BAD-DATE", AcquisitionDate: "01/01/2024", Warranty: "12"},
		{ID: "NO-DATE", AcquisitionDate: "", Warranty: "12"},
		{ID: "BAD-WARRANTY", AcquisitionDate: "2024-01-01", Warranty: "one year"},
		// Blank warranty parses as 0 months: included, expired on acquisition day
		{ID: "NO-WARRANTY", AcquisitionDate: "2024-01-01", Warranty: ""},
	}

	rep := BuildWarranty(assets, date(2025, time.January, 15))

	total := len(rep.Valid) + len(rep.ExpiringSoon) + len(rep.Expired)
	if total != 1 {
		t.Fatalf("classified %d assets, want 1", total)
	}
	if rep.Expired[0].Asset.ID != "NO-WARRANTY" {
		t.Errorf("classified = %+v", rep.Expired[0].Asset)
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		start  time.Time
		months int
		want   time.Time
	}{
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)}, // leap year
		{date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{date(2024, time.January, 31), 3, date(2024, time.April, 30)},
		{date(2024, time.March, 15), 12, date(2025, time.March, 15)},
		{date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{date(2024, time.May, 10), 0, date(2024, time.May, 10)},
	}

	for _, tt := range tests {
		if got := addMonths(tt.start, tt.months); !got.Equal(tt.want) {
			t.Errorf("addMonths(%v, %d) = %v, want %v",
				tt.start.Format(model.DateLayout), tt.months,
				got.Format(model.DateLayout), tt.want.Format(model.DateLayout))
		}
	}
}

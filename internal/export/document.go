package export

import (
	"strconv"
	"strings"

	"github.com/afmdw/asset-hub/internal/model"
)

// FieldRow is one (label, value) line of a single-asset document.
type FieldRow struct {
	Label string
	Value string
}

// AssetDocument renders one asset as ordered field/value rows for the
// document exporter. Field order matches the record declaration; the
// cost is formatted as a currency amount.
func AssetDocument(a model.Asset) []FieldRow {
	return []FieldRow{
		{"Asset ID", a.ID},
		{"Name", a.Name},
		{"Type", a.Type},
		{"Status", a.Status},
		{"Owner", a.Owner},
		{"Location", a.Location},
		{"Acquisition Date", a.AcquisitionDate},
		{"Release Date", a.ReleaseDate},
		{"Cost", FormatCurrency(model.ParseCost(a.Cost))},
		{"Warranty (months)", a.Warranty},
		{"Notes", a.Notes},
	}
}

// FormatCurrency renders an amount as $1,234.56 with thousands
// separators and two decimal places.
func FormatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	return "$" + sign + b.String() + frac
}

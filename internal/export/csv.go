package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/afmdw/asset-hub/internal/model"
)

// WriteCSV writes the asset collection as a flat table, one row per
// asset, with the field names in record declaration order as the
// header.
func WriteCSV(w io.Writer, assets []model.Asset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.FieldNames); err != nil {
		return err
	}
	for _, a := range assets {
		if err := cw.Write(a.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBundleCSV writes a sectioned export: a metadata header, the
// asset table, then the owner table.
func WriteBundleCSV(w io.Writer, assets []model.Asset, owners map[string]model.Owner, now time.Time) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Asset Management Bundle Export"},
		{fmt.Sprintf("Exported: %s", now.Format(model.TimestampLayout))},
		{""},
		{"ASSETS"},
		model.FieldNames,
	}
	for _, a := range assets {
		rows = append(rows, a.Values())
	}

	rows = append(rows, []string{""}, []string{"OWNERS"}, []string{"Owner", "Created Date"})
	names := make([]string, 0, len(owners))
	for name := range owners {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{name, owners[name].CreatedDate})
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

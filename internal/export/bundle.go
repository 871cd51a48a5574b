/*
Package export serializes the asset collection for interchange: JSON
bundles combining assets and owners, delimited tables, and per-asset
field/value documents.

The engine emits plain structured data; rendering (PDF layout, styling)
belongs to the consuming front end.
*/
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/afmdw/asset-hub/internal/model"
)

// Bundle combines the full collection and registry in one document.
// Export then import of a bundle reproduces the same assets and owners.
type Bundle struct {
	Assets     []model.Asset          `json:"assets"`
	Owners     map[string]model.Owner `json:"owners"`
	ExportDate string                 `json:"export_date"`
}

// WriteBundle writes assets and owners as a single indented JSON
// document.
func WriteBundle(w io.Writer, assets []model.Asset, owners map[string]model.Owner, now time.Time) error {
	b := Bundle{
		Assets:     assets,
		Owners:     owners,
		ExportDate: now.Format(model.TimestampLayout),
	}
	if b.Assets == nil {
		b.Assets = []model.Asset{}
	}
	if b.Owners == nil {
		b.Owners = map[string]model.Owner{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

// ReadBundle parses a bundle document.
func ReadBundle(r io.Reader) (Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, fmt.Errorf("failed to parse bundle: %w", err)
	}
	if b.Assets == nil {
		b.Assets = []model.Asset{}
	}
	if b.Owners == nil {
		b.Owners = map[string]model.Owner{}
	}
	return b, nil
}

// Backup writes a timestamped bundle into dir and returns its path.
func Backup(dir string, assets []model.Asset, owners map[string]model.Owner, now time.Time) (string, error) {
	name := fmt.Sprintf("backup_%s.json", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	defer f.Close()

	if err := WriteBundle(f, assets, owners, now); err != nil {
		return "", err
	}
	return path, nil
}

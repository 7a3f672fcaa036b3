package instrument

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is a FIRE JSON file holding the legs of one repo.
type Document struct {
	Name string   `json:"name"`
	Data []Record `json:"data"`
}

// LoadDocument decodes a Document from r.
func LoadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// LoadFile reads and decodes the Document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	doc, err := LoadDocument(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Legs parses every record and returns the asset leg and the cash leg.
// A document holds exactly one of each.
func (d Document) Legs() (asset, cash *Instrument, err error) {
	for n, rec := range d.Data {
		inst, err := ParseRecord(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d (%s): %w", n, rec.ID, err)
		}
		switch inst.Role() {
		case RoleAsset:
			if asset != nil {
				return nil, nil, &DuplicateLegError{Role: RoleAsset, ID: rec.ID, Index: n}
			}
			asset = inst
		case RoleCash:
			if cash != nil {
				return nil, nil, &DuplicateLegError{Role: RoleCash, ID: rec.ID, Index: n}
			}
			cash = inst
		}
	}
	if asset == nil {
		return nil, nil, &MissingFieldError{Field: "id=" + AssetLegID, Role: RoleAsset}
	}
	if cash == nil {
		return nil, nil, &MissingFieldError{Field: "balance", Role: RoleCash}
	}
	return asset, cash, nil
}

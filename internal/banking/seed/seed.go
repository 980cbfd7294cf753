// Package seed provides the default banking profile and transaction list used to
// initialize an empty cache and to answer reads while the cache is empty.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
)

//go:embed data/*.json
var files embed.FS

// Data is a seed profile together with its seed transactions.
type Data struct {
	Profile      bankingDomain.Profile       `json:"profile"`
	Transactions []bankingDomain.Transaction `json:"transactions"`
}

// Validate checks the profile and every transaction.
func (d Data) Validate() error {
	if err := d.Profile.Validate(); err != nil {
		return err
	}
	for i, t := range d.Transactions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed transaction %d: %w", i, err)
		}
	}
	return nil
}

// Default returns the bundled seed data.
func Default() Data {
	var d Data
	mustDecode("data/banking.json", &d.Profile)
	mustDecode("data/transactions.json", &d.Transactions)
	return d
}

func mustDecode(name string, v any) {
	raw, err := files.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("seed: read %s: %v", name, err))
	}
	if err := json.Unmarshal(raw, v); err != nil {
		panic(fmt.Sprintf("seed: decode %s: %v", name, err))
	}
}

// Load reads seed data from a JSON file shaped like Data. An empty path returns the
// bundled seed. Sections missing from the file are taken from the bundled seed.
func Load(path string) (Data, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fromFile struct {
		Profile      *bankingDomain.Profile       `json:"profile"`
		Transactions *[]bankingDomain.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &fromFile); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if fromFile.Profile != nil {
		d.Profile = *fromFile.Profile
	}
	if fromFile.Transactions != nil {
		d.Transactions = *fromFile.Transactions
	}

	if err := d.Validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

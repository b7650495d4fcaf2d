package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexical/pkg/lexical/inventory"
)

// Inventory represents a custom phonetic system file
type Inventory struct {
	Consonants    []string `yaml:"consonants"`
	Vowels        []string `yaml:"vowels"`
	PrimaryStress string   `yaml:"primary_stress"`
}

// LoadInventory loads a custom phonetic system from a YAML file
func LoadInventory(path string) (*inventory.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return inventory.NewCustom(inv.Rows())
}

// Rows lays the symbol lists out as the rows of a phonetic system table.
func (inv Inventory) Rows() []inventory.CustomRow {
	n := max(len(inv.Consonants), len(inv.Vowels), 1)
	rows := make([]inventory.CustomRow, n)
	for i := range rows {
		if i < len(inv.Consonants) {
			rows[i].Consonant = inv.Consonants[i]
		}
		if i < len(inv.Vowels) {
			rows[i].Vowel = inv.Vowels[i]
		}
	}
	rows[0].PrimaryStress = inv.PrimaryStress
	return rows
}

package cdr

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog is an immutable, ordered set of towers.
type Catalog struct {
	towers []Tower
}

// NewCatalog copies towers into a new catalog.
func NewCatalog(towers ...Tower) Catalog {
	cp := make([]Tower, len(towers))
	copy(cp, towers)
	return Catalog{towers: cp}
}

// Len returns the number of towers.
func (c Catalog) Len() int {
	return len(c.towers)
}

// At returns the tower at index i.
func (c Catalog) At(i int) Tower {
	return c.towers[i]
}

// Towers returns a copy of the towers in catalog order.
func (c Catalog) Towers() []Tower {
	cp := make([]Tower, len(c.towers))
	copy(cp, c.towers)
	return cp
}

// Contains reports whether t is one of the catalog's (id, name) pairs.
func (c Catalog) Contains(t Tower) bool {
	for _, tower := range c.towers {
		if tower == t {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the six Dutch towers used when nothing else is configured.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Tower{ID: "CT-1001", Name: "Utrecht CO Tower"},
		Tower{ID: "CT-1002", Name: "Maastricht Maas Tower"},
		Tower{ID: "CT-1003", Name: "Amsterdam Amstel Tower"},
		Tower{ID: "CT-1004", Name: "Leiden Tower"},
		Tower{ID: "CT-1005", Name: "Rotterdam Coolsingel Tower"},
		Tower{ID: "CT-1006", Name: "Groningen Martini Tower"},
	)
}

// Registry maps built-in catalog names to catalog factories
var Registry = map[string]func() Catalog{
	"netherlands": DefaultCatalog,
}

// Get returns a built-in catalog by name
func Get(name string) (Catalog, error) {
	factory, exists := Registry[name]
	if !exists {
		return Catalog{}, fmt.Errorf("%w: %s", ErrUnknownCatalog, name)
	}
	return factory(), nil
}

// List returns all built-in catalog names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the built-in catalog called nameOrPath, or loads it from a
// JSON file when no built-in catalog has that name.
func Resolve(nameOrPath string) (Catalog, error) {
	if _, exists := Registry[nameOrPath]; exists {
		return Get(nameOrPath)
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return Catalog{}, fmt.Errorf("%w: %s (built-in catalogs: %v)", ErrUnknownCatalog, nameOrPath, List())
	}
	return LoadCatalog(nameOrPath)
}

// LoadCatalog reads a JSON array of {"id", "name"} objects.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return DecodeCatalog(data)
}

// DecodeCatalog parses and validates a JSON-encoded catalog.
func DecodeCatalog(data []byte) (Catalog, error) {
	var towers []Tower
	if err := json.Unmarshal(data, &towers); err != nil {
		return Catalog{}, fmt.Errorf("%w: failed to decode JSON: %v", ErrInvalidCatalog, err)
	}
	if len(towers) == 0 {
		return Catalog{}, fmt.Errorf("%w: no towers", ErrInvalidCatalog)
	}
	for i, t := range towers {
		if t.ID == "" {
			return Catalog{}, fmt.Errorf("%w: tower %d has no id", ErrInvalidCatalog, i)
		}
	}
	return NewCatalog(towers...), nil
}

package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type catalogEntry struct {
	ID           string `json:"id"`
	Reference    string `json:"pid"`
	Name         string `json:"name"`
	PricePerUnit string `json:"price_per_unit"`
}

// Catalog indexes products by reference.
type Catalog struct {
	byReference map[string]Product
}

func NewCatalog(products ...Product) *Catalog {
	c := &Catalog{byReference: make(map[string]Product, len(products))}
	for _, p := range products {
		c.byReference[p.Reference] = p
	}
	return c
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	var entries []catalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]Product, 0, len(entries))
	for i, e := range entries {
		if e.Reference == "" {
			return nil, fmt.Errorf("catalog entry %d: missing pid", i)
		}
		price, err := ParsePrice(e.PricePerUnit)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", e.Reference, err)
		}
		products = append(products, Product{
			ID:           e.ID,
			Reference:    e.Reference,
			Name:         e.Name,
			PricePerUnit: price,
		})
	}
	return NewCatalog(products...), nil
}

func (c *Catalog) Lookup(reference string) (Product, error) {
	p, ok := c.byReference[reference]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, reference)
	}
	return p, nil
}

func (c *Catalog) Len() int { return len(c.byReference) }

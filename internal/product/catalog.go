// Package product provides the read-only food and fruit catalogs.
package product

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound = errors.New("product not found")
)

//go:embed catalog.yaml
var catalogYAML []byte

type Query struct {
	Category Category // empty means every category
	Q        string   // case-insensitive substring of the name
}

type Catalog struct {
	items []Product
	byID  map[string]int
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("bundled catalog: %v", err))
	}
	return c
}

// Parse reads a YAML catalog. Ids must be unique, prices whole and
// non-negative.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Products []entry `yaml:"products"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{items: make([]Product, 0, len(doc.Products)), byID: make(map[string]int, len(doc.Products))}
	for i, e := range doc.Products {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("parse catalog: product %d: id and name are required", i)
		}
		price, err := parsePrice(e.Price)
		if err != nil {
			return nil, fmt.Errorf("parse catalog: product %s: %w", e.ID, err)
		}
		if e.Category != Food && e.Category != Fruit {
			return nil, fmt.Errorf("parse catalog: product %s: unknown category %q", e.ID, e.Category)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate id %s", e.ID)
		}
		c.byID[e.ID] = len(c.items)
		c.items = append(c.items, Product{
			ID:        e.ID,
			Name:      e.Name,
			Category:  e.Category,
			Price:     price,
			ImageName: e.Image,
		})
	}
	return c, nil
}

// parsePrice converts a decimal amount in dong to minor units. Fractions of
// a dong are rejected.
func parsePrice(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("price %q: negative", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("price %q: fractional dong", s)
	}
	return d.IntPart(), nil
}

// List returns matching products in catalog order.
func (c *Catalog) List(q Query) []Product {
	search := strings.ToLower(strings.TrimSpace(q.Q))

	out := make([]Product, 0, len(c.items))
	for _, p := range c.items {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Catalog) GetByID(id string) (Product, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Product{}, ErrNotFound
	}
	return c.items[i], nil
}

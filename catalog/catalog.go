package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a creator id is not in the catalog.
var ErrNotFound = errors.New("creator not found")

// Creator is one entry in the token catalog. Everything here is fixed at
// load time; the live token price lives in pricing.Book, not on the creator.
type Creator struct {
	ID                string            `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	Handle            string            `json:"handle" yaml:"handle"`
	ShortBio          string            `json:"short_bio,omitempty" yaml:"short_bio,omitempty"`
	LongBio           string            `json:"long_bio,omitempty" yaml:"long_bio,omitempty"`
	ImageURL          string            `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	InitialTokenPrice float64           `json:"initial_token_price" yaml:"initial_token_price"`
	TokenSupply       int64             `json:"token_supply" yaml:"token_supply"`
	SocialLinks       map[string]string `json:"social_links,omitempty" yaml:"social_links,omitempty"`
	Tags              []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Region            string            `json:"region,omitempty" yaml:"region,omitempty"`
}

// Catalog is a read-only creator store. Build one with New or LoadFile and
// share it freely; it never changes after construction.
type Catalog struct {
	order []string
	byID  map[string]Creator
}

// New builds a catalog from a list of creators, preserving list order.
func New(creators []Creator) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(creators)),
		byID:  make(map[string]Creator, len(creators)),
	}
	for i, cr := range creators {
		if cr.ID == "" {
			return nil, fmt.Errorf("creator %d: id is required", i)
		}
		if _, dup := c.byID[cr.ID]; dup {
			return nil, fmt.Errorf("creator %q: duplicate id", cr.ID)
		}
		if cr.InitialTokenPrice <= 0 {
			return nil, fmt.Errorf("creator %q: initial_token_price must be positive", cr.ID)
		}
		if cr.TokenSupply <= 0 {
			return nil, fmt.Errorf("creator %q: token_supply must be positive", cr.ID)
		}
		c.order = append(c.order, cr.ID)
		c.byID[cr.ID] = cr
	}
	return c, nil
}

// List returns all creators in catalog order. The slice is a copy.
func (c *Catalog) List() []Creator {
	out := make([]Creator, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get looks up a single creator by id.
func (c *Catalog) Get(id string) (Creator, error) {
	cr, ok := c.byID[id]
	if !ok {
		return Creator{}, fmt.Errorf("creator %q: %w", id, ErrNotFound)
	}
	return cr, nil
}

// Len reports the number of creators in the catalog.
func (c *Catalog) Len() int { return len(c.order) }

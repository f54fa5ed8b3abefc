// Package cart maintains the set of datasets a visitor has selected.
// A Cart is a value; mutating operations return the updated cart and
// leave the receiver untouched, so handlers can rebuild state from
// client signals on every request without shared mutation.
package cart

import "nestcrm-web/internal/models"

// Lookup resolves a dataset id to its catalog record.
type Lookup interface {
	Get(id int) (models.Dataset, bool)
}

// Cart holds full copies of the selected datasets. Each dataset id
// appears at most once.
type Cart struct {
	items []models.Dataset
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// FromIDs rebuilds a cart from a list of dataset ids, preserving id
// order. Unknown and repeated ids are dropped.
func FromIDs(lookup Lookup, ids []int) Cart {
	c := New()
	for _, id := range ids {
		if d, ok := lookup.Get(id); ok {
			c = c.Add(d)
		}
	}
	return c
}

// Add returns a cart containing d. Adding a dataset whose id is
// already present returns the cart unchanged.
func (c Cart) Add(d models.Dataset) Cart {
	if c.Contains(d.ID) {
		return c
	}
	items := make([]models.Dataset, len(c.items), len(c.items)+1)
	copy(items, c.items)
	return Cart{items: append(items, d)}
}

// Remove returns a cart without the entry matching id. Removing an
// absent id is a no-op, not an error.
func (c Cart) Remove(id int) Cart {
	if !c.Contains(id) {
		return c
	}
	items := make([]models.Dataset, 0, len(c.items)-1)
	for _, item := range c.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return Cart{items: items}
}

// Contains reports whether id is in the cart.
func (c Cart) Contains(id int) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns the cart contents in insertion order.
func (c Cart) Items() []models.Dataset {
	return c.items
}

// IDs returns the dataset ids in insertion order, for round-tripping
// through client signals.
func (c Cart) IDs() []int {
	ids := make([]int, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

// Count returns the number of items.
func (c Cart) Count() int {
	return len(c.items)
}

// Total returns the sum of item prices; 0 for an empty cart.
func (c Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Package item holds the static item catalog. The catalog is built
// once at startup and passed by handle into the services that need it;
// it is never mutated afterwards. IDs follow registration order and
// are stable across restarts because the registration order is fixed.
package item

import (
	"fmt"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// Catalog is the immutable item registry.
type Catalog struct {
	items  []domain.Item
	byID   map[int]domain.Item
	byName map[string]domain.Item
}

// NewCatalog builds the full catalog in registration order.
func NewCatalog() *Catalog {
	c := &Catalog{
		byID:   make(map[int]domain.Item),
		byName: make(map[string]domain.Item),
	}

	c.register(domain.Item{
		Name:        domain.ItemPaperclip,
		Price:       0,
		Description: "A length of wire bent into flat loops that is used to hold papers together. Origin unknown.",
	})
	c.register(domain.Item{
		Name:        domain.ItemFertilizer,
		Price:       75,
		ForSale:     true,
		Description: "A bottle of plant fertilizer. When applied, will increase plant growth rate by 1.5x for 3 days.",
	})
	for _, color := range domain.FlowerColors {
		article := "a"
		if color == "orange" || color == "indigo" {
			article = "an"
		}
		c.register(domain.Item{
			Name:        domain.PetalItemName(color),
			Price:       0,
			Description: fmt.Sprintf("A single flower petal from %s %s plant. Graceful, delicate, and reserved.", article, color),
		})
	}
	c.register(domain.Item{
		Name:        domain.ItemCoin,
		Price:       1,
		Description: "A copper coin. Can be used to purchase items at the shop.",
	})
	c.register(domain.Item{
		Name:        domain.ItemPostcard,
		Price:       20,
		ForSale:     true,
		Description: "A blank postcard. Can be used to send a private message to another user.",
	})

	return c
}

// register assigns the next ID and indexes the item. IDs start at 1.
func (c *Catalog) register(it domain.Item) {
	it.ID = len(c.items) + 1
	c.items = append(c.items, it)
	c.byID[it.ID] = it
	c.byName[it.Name] = it
}

// ByID looks an item up by its catalog ID.
func (c *Catalog) ByID(id int) (domain.Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// ByName looks an item up by its catalog name.
func (c *Catalog) ByName(name string) (domain.Item, error) {
	it, ok := c.byName[name]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return it, nil
}

// MustByName is ByName for catalog constants that are known to exist.
// It panics on a miss, which can only happen on a programming error.
func (c *Catalog) MustByName(name string) domain.Item {
	it, err := c.ByName(name)
	if err != nil {
		panic(err)
	}
	return it
}

// All returns every item in registration order.
func (c *Catalog) All() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ForSale returns the items purchasable at the store.
func (c *Catalog) ForSale() []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if it.ForSale {
			out = append(out, it)
		}
	}
	return out
}

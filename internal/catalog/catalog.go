package catalog

// defaultItems is the built-in menu shown when the config names no items.
var defaultItems = []string{
	"Margharita",
	"Hawaiian",
	"Mexicana",
	"Tropicana",
	"Pepperoni",
	"Chicken Supreme",
	"Pepperoni Special",
	"Chicken Sweetcorn",
	"Chicken Mushroom",
}

// Catalog is the ordered, immutable set of candidates a query is matched against.
type Catalog struct {
	items []string
}

// Default returns the built-in nine-item catalog.
func Default() Catalog {
	return New(defaultItems)
}

// New builds a catalog from a copy of items. Order and duplicates are kept.
func New(items []string) Catalog {
	c := Catalog{items: make([]string, len(items))}
	copy(c.items, items)
	return c
}

// FromConfig returns a catalog of items, or the default one when items is empty.
func FromConfig(items []string) Catalog {
	if len(items) == 0 {
		return Default()
	}
	return New(items)
}

// Items returns a copy of the candidates in catalog order.
func (c Catalog) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of candidates.
func (c Catalog) Len() int {
	return len(c.items)
}

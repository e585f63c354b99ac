// internal/domain/catalog/entity.go
package catalog

import "time"

// Category represents the product category
type Category string

const (
	CategorySmartphone Category = "smartphone"
	CategoryLaptop     Category = "laptop"
	CategoryTablet     Category = "tablet"
	CategoryAccessory  Category = "accessory"
)

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategorySmartphone, CategoryLaptop, CategoryTablet, CategoryAccessory:
		return true
	}
	return false
}

// Specification is a single ordered name/value pair on a product sheet
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a sellable product
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Category       Category        `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Image          string          `json:"image"`
	Specifications []Specification `json:"specifications"`
	Stock          int             `json:"stock"`
	Rating         float64         `json:"rating"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Clone returns a value copy of the product. Specifications are copied so
// cart and order snapshots stay isolated from later catalog edits.
func (p Product) Clone() Product {
	clone := p
	clone.Specifications = make([]Specification, len(p.Specifications))
	copy(clone.Specifications, p.Specifications)
	return clone
}

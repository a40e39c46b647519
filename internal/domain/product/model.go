// Package product defines the storefront catalog records.
package product

// Type distinguishes digital downloads from shippable goods.
type Type string

const (
	TypeDigital  Type = "digital"
	TypePhysical Type = "physical"
)

// Product is the normalized catalog record handed to rendering and API
// callers. Live rows and fallback rows are both reduced to this shape; the
// two sources are never merged field-by-field.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"originalPrice,omitempty"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"image_url,omitempty"`
	Category      string         `json:"category,omitempty"`
	IsFeatured    bool           `json:"is_featured,omitempty"`
	IsActive      bool           `json:"is_active"`
	ProductType   Type           `json:"productType"`
	Benefits      []string       `json:"benefits,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// Row mirrors a products table row as PostgREST returns it. The stored
// column is product_type; Normalize maps it onto the productType field the
// rest of the system uses.
type Row struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"original_price,omitempty"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"image_url"`
	Category      string         `json:"category"`
	IsFeatured    bool           `json:"is_featured"`
	IsActive      bool           `json:"is_active"`
	ProductType   string         `json:"product_type"`
	Benefits      []string       `json:"benefits,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// Normalize converts a stored row into the shared Product shape. A missing
// product_type defaults to digital.
func (r Row) Normalize() Product {
	pt := Type(r.ProductType)
	if pt != TypeDigital && pt != TypePhysical {
		pt = TypeDigital
	}
	return Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Category:      r.Category,
		IsFeatured:    r.IsFeatured,
		IsActive:      r.IsActive,
		ProductType:   pt,
		Benefits:      r.Benefits,
		Details:       r.Details,
	}
}

package entity

import "github.com/shopspring/decimal"

// Product is a catalog item. Category is free text; the category list is derived from products.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // Positive unit price in BRL.
	Category    string
	ImageURL    string
}

// MissingFields lists the required attributes that are blank or invalid.
func (p *Product) MissingFields() []string {
	var missing []string
	if p.ID == "" {
		missing = append(missing, "id")
	}
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if !p.Price.IsPositive() {
		missing = append(missing, "price")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}

	return missing
}

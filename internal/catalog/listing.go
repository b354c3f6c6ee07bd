package catalog

import "strings"

const (
	DefaultPerPage = 9
	MaxPerPage     = 100
)

type Filter struct {
	InStock  *bool
	Category string
}

type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
	TotalItems int       `json:"total_items"`
}

type StockCounts struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// Apply keeps the products matching every set criterion, preserving order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.InStock != nil && p.Available() != *f.InStock {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate slices products into 1-based pages. A page past the end yields
// an empty item list; page < 1 is rejected. perPage is capped at MaxPerPage.
func Paginate(products []Product, page, perPage int) (Page, error) {
	if page < 1 {
		return Page{}, ErrInvalidPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := len(products)
	totalPages := (total + perPage - 1) / perPage

	items := []Product{}
	if page <= totalPages {
		start := (page - 1) * perPage
		end := min(start+perPage, total)
		items = make([]Product, end-start)
		copy(items, products[start:end])
	}

	return Page{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}

func CountStock(products []Product) StockCounts {
	var c StockCounts
	for _, p := range products {
		if p.Available() {
			c.InStock++
		} else {
			c.OutOfStock++
		}
	}
	return c
}

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductID is the catalog key. The REST service emits ids as JSON numbers or
// strings; both decode into the same value.
type ProductID string

func (id *ProductID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) String() string { return string(id) }

// Int reports the numeric form of the id, when it has one.
func (id ProductID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

type Product struct {
	ID          ProductID        `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	InStock     *bool            `json:"in_stock,omitempty"`
	Description string           `json:"description,omitempty"`
}

// UnmarshalJSON also accepts the camelCase inStock spelling used by some
// catalog fixtures.
func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product
	aux := struct {
		*plain
		InStockCamel *bool `json:"inStock"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if p.InStock == nil && aux.InStockCamel != nil {
		p.InStock = aux.InStockCamel
	}
	return nil
}

// Available treats a missing stock flag as in stock.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}

// OnSale is true when a sale price above the selling price is advertised,
// which the storefront renders as a struck-through "was" price.
func (p Product) OnSale() bool {
	return p.SalePrice != nil && p.SalePrice.GreaterThan(p.Price)
}

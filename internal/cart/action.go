package cart

import (
	"storefront/internal/catalog"
	"storefront/internal/coupon"
)

// Action is a tagged cart mutation consumed by Reduce.
type Action interface {
	actionName() string
}

type AddItem struct{ Item LineItem }

type UpdateQuantity struct {
	ID       catalog.ProductID
	Quantity int
}

type RemoveItem struct{ ID catalog.ProductID }

type Clear struct{}

type ApplyCoupon struct{ Coupon coupon.Coupon }

type RemoveCoupon struct{}

type Restore struct{ State State }

func (AddItem) actionName() string        { return "ADD_TO_CART" }
func (UpdateQuantity) actionName() string { return "UPDATE_QUANTITY" }
func (RemoveItem) actionName() string     { return "REMOVE_FROM_CART" }
func (Clear) actionName() string          { return "CLEAR_CART" }
func (ApplyCoupon) actionName() string    { return "APPLY_COUPON" }
func (RemoveCoupon) actionName() string   { return "REMOVE_COUPON" }
func (Restore) actionName() string        { return "RESTORE_CART" }

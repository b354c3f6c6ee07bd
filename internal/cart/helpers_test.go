package cart

import "storefront/internal/catalog"

func catalogID(s string) catalog.ProductID { return catalog.ProductID(s) }

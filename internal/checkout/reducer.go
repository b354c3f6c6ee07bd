package checkout

func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case SetContactInfo:
		next.ContactInfo = a.Patch.apply(next.ContactInfo)

	case SetDeliveryInfo:
		next.DeliveryInfo = a.Patch.apply(next.DeliveryInfo)

	case SetPaymentMethod:
		next.PaymentMethod = a.Method

	case SetBillingAddressSame:
		next.BillingAddressSameAsDelivery = a.Same

	case SetBillingAddress:
		if a.Address == nil {
			next.BillingAddress = nil
		} else {
			b := *a.Address
			next.BillingAddress = &b
		}

	case SetCurrentOrder:
		o := a.Order.Clone()
		next.CurrentOrder = &o

	case AddToOrderHistory:
		if next.CurrentOrder == nil {
			return next
		}
		history := make([]Order, 0, len(next.OrderHistory)+1)
		history = append(history, *next.CurrentOrder)
		next.OrderHistory = append(history, next.OrderHistory...)
		next.CurrentOrder = nil

	case ClearCheckoutData:
		fresh := initialState()
		fresh.OrderHistory = next.OrderHistory
		next = fresh

	case ReplaceOrder:
		if next.CurrentOrder != nil && next.CurrentOrder.OrderNumber == a.Order.OrderNumber {
			o := a.Order.Clone()
			next.CurrentOrder = &o
		}
		for i := range next.OrderHistory {
			if next.OrderHistory[i].OrderNumber == a.Order.OrderNumber {
				next.OrderHistory[i] = a.Order.Clone()
			}
		}
	}

	return next
}

func (p ContactPatch) apply(c ContactInfo) ContactInfo {
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.SubscribeToNews != nil {
		c.SubscribeToNews = *p.SubscribeToNews
	}
	return c
}

func (p DeliveryPatch) apply(d DeliveryInfo) DeliveryInfo {
	if p.Country != nil {
		d.Country = *p.Country
	}
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.Apartment != nil {
		d.Apartment = *p.Apartment
	}
	if p.City != nil {
		d.City = *p.City
	}
	if p.PostalCode != nil {
		d.PostalCode = *p.PostalCode
	}
	if p.SaveForNextTime != nil {
		d.SaveForNextTime = *p.SaveForNextTime
	}
	return d
}

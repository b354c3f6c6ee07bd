package checkout

import "strings"

// FormattedAddress returns the non-empty display lines of an address: full
// name, street, apartment, "city, postal code" (or city alone), country.
func FormattedAddress(a DeliveryInfo) []string {
	var name string
	if a.FirstName != "" && a.LastName != "" {
		name = a.FirstName + " " + a.LastName
	}

	cityLine := a.City
	if a.City != "" && a.PostalCode != "" {
		cityLine = a.City + ", " + a.PostalCode
	}

	lines := make([]string, 0, 5)
	for _, l := range []string{name, a.Address, a.Apartment, cityLine, a.Country} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// JoinedAddress is the single-line street address sent with an order.
func JoinedAddress(a DeliveryInfo) string {
	parts := make([]string, 0, 5)
	for _, l := range []string{a.Address, a.Apartment, a.City, a.PostalCode, a.Country} {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ", ")
}

package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validState() State {
	s := initialState()
	s.ContactInfo.Email = "jane@example.com"
	s.DeliveryInfo.FirstName = "Jane"
	s.DeliveryInfo.LastName = "Doe"
	s.DeliveryInfo.Address = "1 Main St"
	s.DeliveryInfo.City = "Lahore"
	return s
}

func TestIsCheckoutValid(t *testing.T) {
	assert.True(t, IsCheckoutValid(validState()))

	s := validState()
	s.DeliveryInfo.City = "   "
	assert.False(t, IsCheckoutValid(s))

	// format is not part of the predicate
	s = validState()
	s.ContactInfo.Email = "not-an-email"
	assert.True(t, IsCheckoutValid(s))

	// optional fields
	s = validState()
	s.ContactInfo.Phone = ""
	s.DeliveryInfo.PostalCode = ""
	assert.True(t, IsCheckoutValid(s))
}

func TestValidateForm(t *testing.T) {
	t.Run("AllMissing", func(t *testing.T) {
		errs := ValidateForm(initialState())
		assert.Equal(t, FieldErrors{
			"email":      "Email is required",
			"first_name": "First name is required",
			"last_name":  "Last name is required",
			"address":    "Address is required",
			"city":       "City is required",
		}, errs)
	})

	t.Run("BadEmail", func(t *testing.T) {
		for _, email := range []string{"plain", "a@b", "a b@c.d", "@c.d"} {
			s := validState()
			s.ContactInfo.Email = email
			assert.Equal(t, FieldErrors{"email": "Please enter a valid email"}, ValidateForm(s), email)
		}
	})

	t.Run("TrimmedEmailAccepted", func(t *testing.T) {
		s := validState()
		s.ContactInfo.Email = "  jane@example.com "
		assert.Empty(t, ValidateForm(s))
	})
}

func TestFormattedAddress(t *testing.T) {
	full := DeliveryInfo{
		Country: "Pakistan", FirstName: "Jane", LastName: "Doe",
		Address: "1 Main St", Apartment: "Apt 4", City: "Lahore", PostalCode: "54000",
	}
	assert.Equal(t, []string{"Jane Doe", "1 Main St", "Apt 4", "Lahore, 54000", "Pakistan"}, FormattedAddress(full))

	partial := DeliveryInfo{FirstName: "Jane", City: "Lahore"}
	assert.Equal(t, []string{"Lahore"}, FormattedAddress(partial))

	assert.Empty(t, FormattedAddress(DeliveryInfo{}))
	assert.Equal(t, "1 Main St, Apt 4, Lahore, 54000, Pakistan", JoinedAddress(full))
	assert.Equal(t, "Lahore", JoinedAddress(partial))
	assert.Equal(t, "", JoinedAddress(DeliveryInfo{}))
	assert.Equal(t, "Jane Doe", full.FullName())
	assert.Equal(t, "Jane", partial.FullName())
}

package domain

// Currency identifies the currency an event is billed in.
type Currency string

const (
	ARS Currency = "ARS"
	USD Currency = "USD"
)

// DefaultCurrency is used when an event was stored without a currency.
const DefaultCurrency = ARS

// ParseCurrency validates s and returns the matching Currency.
// An empty string falls back to DefaultCurrency.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case ARS, USD:
		return Currency(s), nil
	case "":
		return DefaultCurrency, nil
	default:
		return "", ErrInvalidCurrency
	}
}

// Role is the access level of an authenticated staff member.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubadmin Role = "subadmin"
	RoleUser     Role = "user"
)

// CanManageEvents reports whether the role may create or modify events
// and record payments.
func (r Role) CanManageEvents() bool {
	return r == RoleAdmin || r == RoleSubadmin
}

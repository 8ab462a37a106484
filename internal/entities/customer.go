package entities

import "strings"

type Customer struct {
	ID       int64
	Code     string
	FullName string
	Phone    string
	Email    string
	Address  string
}

// CustomerMode says which customer identity shape a deployment sends to the backend.
type CustomerMode string

const (
	CustomerModeReference CustomerMode = "reference"
	CustomerModeInline    CustomerMode = "inline"
)

// CustomerIdentity is either a reference to an existing customer or an inline
// walk-in bundle. Exactly one of the two is used, depending on CustomerMode.
type CustomerIdentity struct {
	CustomerID int64

	FullName string
	Phone    string
	Address  string
}

func (c CustomerIdentity) IsZero() bool {
	return c == CustomerIdentity{}
}

// Complete reports whether the fields required by mode are filled in.
func (c CustomerIdentity) Complete(mode CustomerMode) bool {
	switch mode {
	case CustomerModeReference:
		return c.CustomerID > 0
	case CustomerModeInline:
		return strings.TrimSpace(c.FullName) != "" && strings.TrimSpace(c.Phone) != ""
	default:
		return false
	}
}

// Conforms reports whether c only uses the fields of the given mode.
func (c CustomerIdentity) Conforms(mode CustomerMode) bool {
	switch mode {
	case CustomerModeReference:
		return c.FullName == "" && c.Phone == "" && c.Address == ""
	case CustomerModeInline:
		return c.CustomerID == 0
	default:
		return false
	}
}

// Package entity contains the core business objects of the project.
package entity

// OwnerType represents the type of entity that can own a wallet or file a
// withdrawal request.
type OwnerType string

const (
	// OwnerTypeDriver indicates the wallet belongs to a driver.
	OwnerTypeDriver OwnerType = "driver"
	// OwnerTypeRestaurant indicates the wallet belongs to a restaurant.
	OwnerTypeRestaurant OwnerType = "restaurant"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeDriver, OwnerTypeRestaurant:
		return true
	default:
		return false
	}
}

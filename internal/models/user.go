package models

// User is a storefront customer with a loyalty-points balance.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

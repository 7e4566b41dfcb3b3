package models

// User is a registered account. The stored password is the hasher's
// `<derived-hex>.<salt-hex>` encoding and must never reach a client.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"-"` // don’t expose hash
}

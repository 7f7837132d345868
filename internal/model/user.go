package model

// User is a Keycloak user. It has no table: the identity provider is the store of record.
type User struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Enabled   bool
	Password  string // write-only, never read back from Keycloak
	Roles     []Role
}

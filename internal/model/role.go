package model

// Role is a Keycloak realm role.
type Role struct {
	ID   string
	Name string
}

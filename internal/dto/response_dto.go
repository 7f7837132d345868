package dto

import "time"

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LanguageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuestionResponse struct {
	ID         uint               `json:"id"`
	Title      string             `json:"title"`
	Body       string             `json:"body"`
	LanguageID *uint              `json:"language_id,omitempty"`
	Categories []CategoryResponse `json:"categories"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type RoleResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UserResponse never carries the password.
type UserResponse struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Enabled   bool           `json:"enabled"`
	Roles     []RoleResponse `json:"roles"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

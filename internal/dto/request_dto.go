package dto

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type LanguageRequest struct {
	Name string `json:"name" binding:"required"`
}

// QuestionRequest creates or replaces a question. CategoryIDs replaces the full set of links.
type QuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
	LanguageID  *uint  `json:"language_id"`
	CategoryIDs []uint `json:"category_ids"`
}

type RoleRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// UserRequest is the body of addUser and updateUser.
type UserRequest struct {
	ID        string        `json:"id"`
	Username  string        `json:"username" binding:"required"`
	Email     string        `json:"email" binding:"omitempty,email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Password  string        `json:"password"`
	Roles     []RoleRequest `json:"roles" binding:"omitempty,dive"`
}

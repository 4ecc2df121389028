package models

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	// Name is an optional display name.
	Name string `json:"name"`

	// Email must be syntactically valid and unique across all users.
	Email string `json:"email"`

	// Password is the plaintext password; at least 6 characters.
	// It is hashed before it ever reaches the store.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	// Token is the signed bearer token the client presents on
	// every note operation.
	Token string `json:"token"`

	Name  string `json:"name"`
	Email string `json:"email"`
}

// NoteRequest is the JSON body of note create and update operations.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

package models

// Admin is the configured operator identity. It is not persisted in Mongo;
// credentials come from configuration.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AdminLogin is the admin sign-in payload.
type AdminLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

package dto

import "time"

// RegisterRequest alta de usuario con email y contraseña.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest inicio de sesión con email y contraseña.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse vista pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse token más el usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package dto

import "time"

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta del servidor al login.
type LoginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// SessionResponse sesión activa expuesta por la API local (sin token).
type SessionResponse struct {
	UserID    int64      `json:"id"`
	Name      string     `json:"nombre"`
	Email     string     `json:"email"`
	Role      string     `json:"rol"`
	ExpiresAt *time.Time `json:"expira,omitempty"`
	Offline   bool       `json:"sinConexion"`
}

// CreateUserRequest body de POST /api/usuarios.
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"rol"`
}

// UserResponse usuario tal como lo devuelve el servidor.
type UserResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nombre"`
	Email     string     `json:"email"`
	Role      string     `json:"rol"`
	Active    bool       `json:"activo"`
	CreatedAt *time.Time `json:"fechaCreacion,omitempty"`
}

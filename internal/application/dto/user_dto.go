package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MissingFields devuelve los nombres de los campos obligatorios ausentes.
func (r RegisterRequest) MissingFields() []string {
	var missing []string
	if r.Nombre == "" {
		missing = append(missing, "nombre")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// LoginRequest entrada para inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest entrada para actualización parcial (todos los campos opcionales).
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// RegisterResponse salida del registro exitoso.
type RegisterResponse struct {
	Message string       `json:"message"`
	UserID  int64        `json:"userId"`
	Usuario UserResponse `json:"usuario"`
}

// LoginResponse salida del login exitoso. No se emite token ni sesión:
// cada petición se autentica solo contra este endpoint.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
	Nombre  string `json:"nombre"`
}

// UserListResponse listado completo de usuarios.
type UserListResponse struct {
	Message  string         `json:"message"`
	Total    int            `json:"total"`
	Usuarios []UserResponse `json:"usuarios"`
}

// UserDetailResponse salida de un usuario individual.
type UserDetailResponse struct {
	Message string       `json:"message"`
	Usuario UserResponse `json:"usuario"`
}

// UpdatedUserResponse proyección devuelta tras una actualización parcial.
type UpdatedUserResponse struct {
	Message string         `json:"message"`
	Usuario UserProjection `json:"usuario"`
}

// UserProjection proyección id/nombre/email (sin fecha ni password).
type UserProjection struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// DeletedUserResponse confirmación de borrado.
type DeletedUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

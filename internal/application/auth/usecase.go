package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro y login.
// El login no emite token ni sesión; solo verifica credenciales.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password contra el hash guardado.
// Devuelve ErrUserNotFound si el email no existe y ErrUnauthorized si el
// password no coincide (comparación en tiempo constante vía bcrypt).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.LoginResponse{
		Message: "Login exitoso.",
		UserID:  user.ID,
		Nombre:  user.Nombre,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		FechaRegistro: u.FechaRegistro,
	}
}

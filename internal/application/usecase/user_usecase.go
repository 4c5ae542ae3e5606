package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

// UserUseCase casos de uso de consulta y mutación de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios en orden ascendente de ID, sin password.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	usuarios := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		usuarios = append(usuarios, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Message:  "Lista de usuarios recuperada con éxito.",
		Total:    len(usuarios),
		Usuarios: usuarios,
	}, nil
}

// GetByID devuelve un usuario, o (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial: solo los campos presentes se tocan
// y el password, si viene, se vuelve a hashear antes de persistir.
// Patch vacío -> ErrInvalidInput. ID inexistente -> (nil, nil).
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserProjection, error) {
	patch := repository.UserPatch{
		Nombre: in.Nombre,
		Email:  in.Email,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.UpdatePartial(id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserProjection{ID: user.ID, Nombre: user.Nombre, Email: user.Email}, nil
}

// Delete elimina un usuario. Devuelve false si el ID no existe.
func (uc *UserUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
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

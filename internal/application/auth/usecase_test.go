package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gabodev/marketplace-api/internal/application/auth"
	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

// fakeUserRepo implementación en memoria del puerto para los tests.
type fakeUserRepo struct {
	nextID int64
	users  []*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.FechaRegistro = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePartial(id int64, patch repository.UserPatch) (*entity.User, error) {
	u, _ := r.GetByID(id)
	if u == nil {
		return nil, nil
	}
	if patch.Nombre != nil {
		u.Nombre = *patch.Nombre
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return u, nil
}

func (r *fakeUserRepo) Delete(id int64) (bool, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestRegister_HasheaPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Ana", out.Nombre)

	stored := repo.users[0]
	assert.NotEqual(t, "secret", stored.PasswordHash, "el password nunca se guarda en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Nombre: "Otra", Email: "a@x.com", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1, "no debe quedar fila duplicada")
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo)

	created, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.UserID)
	assert.Equal(t, "Ana", out.Nombre)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{})

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

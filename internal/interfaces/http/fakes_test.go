package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gabodev/marketplace-api/internal/application/auth"
	"github.com/gabodev/marketplace-api/internal/application/usecase"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
	"github.com/gabodev/marketplace-api/internal/infrastructure/jsonfile"
	apphttp "github.com/gabodev/marketplace-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

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
	var target *entity.User
	for _, u := range r.users {
		if u.ID == id {
			target = u
			break
		}
	}
	if target == nil {
		return nil, nil
	}
	if patch.Email != nil {
		for _, u := range r.users {
			if u.ID != id && u.Email == *patch.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		target.Email = *patch.Email
	}
	if patch.Nombre != nil {
		target.Nombre = *patch.Nombre
	}
	if patch.PasswordHash != nil {
		target.PasswordHash = *patch.PasswordHash
	}
	return target, nil
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

type fakeServiceRepo struct {
	nextID   int64
	services []*entity.Service
}

var _ repository.ServiceRepository = (*fakeServiceRepo)(nil)

func (r *fakeServiceRepo) Create(service *entity.Service) error {
	for _, s := range r.services {
		if s.Nombre == service.Nombre {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	service.ID = r.nextID
	r.services = append(r.services, service)
	return nil
}

func (r *fakeServiceRepo) List() ([]*entity.Service, error) { return r.services, nil }

func (r *fakeServiceRepo) GetByID(id int64) (*entity.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) UpdatePartial(id int64, patch repository.ServicePatch) (*entity.Service, error) {
	var target *entity.Service
	for _, s := range r.services {
		if s.ID == id {
			target = s
			break
		}
	}
	if target == nil {
		return nil, nil
	}
	if patch.Nombre != nil {
		for _, s := range r.services {
			if s.ID != id && s.Nombre == *patch.Nombre {
				return nil, domain.ErrDuplicate
			}
		}
		target.Nombre = *patch.Nombre
	}
	if patch.Descripcion != nil {
		target.Descripcion = *patch.Descripcion
	}
	if patch.Precio != nil {
		target.Precio = *patch.Precio
	}
	if patch.Categoria != nil {
		target.Categoria = *patch.Categoria
	}
	return target, nil
}

func (r *fakeServiceRepo) Delete(id int64) (bool, error) {
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	users    *fakeUserRepo
	services *fakeServiceRepo
	store    *jsonfile.ProviderStore
}

// buildTestApp construye la aplicación Fiber completa sobre dobles en memoria
// y un almacén de archivo real en un directorio temporal.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	users := &fakeUserRepo{}
	services := &fakeServiceRepo{}
	store, err := jsonfile.NewProviderStore(filepath.Join(t.TempDir(), "proveedores.jsonl"))
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users),
		UserUC:     usecase.NewUserUseCase(users),
		ServiceUC:  usecase.NewServiceUseCase(services),
		ProviderUC: usecase.NewProviderUseCase(store),
	})
	return &testEnv{app: app, users: users, services: services, store: store}
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody deserializa el cuerpo de la respuesta en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

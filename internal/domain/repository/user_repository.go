package repository

import "github.com/gabodev/marketplace-api/internal/domain/entity"

// UserPatch campos opcionales para actualización parcial de un usuario.
// Solo los campos no nil se incluyen en el UPDATE.
type UserPatch struct {
	Nombre       *string
	Email        *string
	PasswordHash *string
}

// Empty indica si el patch no trae ningún campo.
func (p UserPatch) Empty() bool {
	return p.Nombre == nil && p.Email == nil && p.PasswordHash == nil
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create persiste el usuario y completa ID y FechaRegistro asignados por el store.
	Create(user *entity.User) error
	// List devuelve todos los usuarios en orden ascendente de ID.
	List() ([]*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// UpdatePartial aplica solo los campos presentes del patch. Devuelve el
	// usuario actualizado, o (nil, nil) si el ID no existe.
	UpdatePartial(id int64, patch UserPatch) (*entity.User, error)
	// Delete elimina por ID. Devuelve false si no había fila.
	Delete(id int64) (bool, error)
}

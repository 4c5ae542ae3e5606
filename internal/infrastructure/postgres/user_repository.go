package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. El store asigna id y fecha_registro.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (nombre, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_registro`
	err := r.pool.QueryRow(context.Background(), query,
		user.Nombre, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios en orden ascendente de ID.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id, nombre, email, password, fecha_registro
		FROM usuarios ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID, o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password, fecha_registro
		FROM usuarios WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email, o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password, fecha_registro
		FROM usuarios WHERE email = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// UpdatePartial aplica solo los campos presentes del patch en un único UPDATE.
// Devuelve (nil, nil) si el ID no existe y ErrEmailAlreadyExists si el nuevo
// email colisiona con otro usuario.
func (r *UserRepo) UpdatePartial(id int64, patch repository.UserPatch) (*entity.User, error) {
	b := NewUpdateBuilder("usuarios").
		SetIfNotNil("nombre", patch.Nombre).
		SetIfNotNil("email", patch.Email).
		SetIfNotNil("password", patch.PasswordHash)
	if b.Empty() {
		return nil, domain.ErrInvalidInput
	}
	query, args := b.Build(id, "id, nombre, email, password, fecha_registro")
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}
	return &u, nil
}

// Delete elimina un usuario por ID. Devuelve false si no había fila.
func (r *UserRepo) Delete(id int64) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

// Create persiste un nuevo servicio. Nombre duplicado -> ErrDuplicate.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO servicios (nombre, descripcion, precio, categoria)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		service.Nombre, service.Descripcion, service.Precio, service.Categoria,
	).Scan(&service.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// List devuelve todos los servicios en orden ascendente de ID.
func (r *ServiceRepo) List() ([]*entity.Service, error) {
	query := `
		SELECT id, nombre, COALESCE(descripcion, ''), precio, COALESCE(categoria, '')
		FROM servicios ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.Precio, &s.Categoria); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene un servicio por ID, o (nil, nil) si no existe.
func (r *ServiceRepo) GetByID(id int64) (*entity.Service, error) {
	query := `
		SELECT id, nombre, COALESCE(descripcion, ''), precio, COALESCE(categoria, '')
		FROM servicios WHERE id = $1`
	var s entity.Service
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nombre, &s.Descripcion, &s.Precio, &s.Categoria,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio by id: %w", err)
	}
	return &s, nil
}

// UpdatePartial aplica solo los campos presentes del patch en un único UPDATE.
// Devuelve (nil, nil) si el ID no existe y ErrDuplicate si el nuevo nombre
// colisiona con otro servicio.
func (r *ServiceRepo) UpdatePartial(id int64, patch repository.ServicePatch) (*entity.Service, error) {
	b := NewUpdateBuilder("servicios").
		SetIfNotNil("nombre", patch.Nombre).
		SetIfNotNil("descripcion", patch.Descripcion)
	if patch.Precio != nil {
		b.Set("precio", *patch.Precio)
	}
	b.SetIfNotNil("categoria", patch.Categoria)
	if b.Empty() {
		return nil, domain.ErrInvalidInput
	}
	query, args := b.Build(id, "id, nombre, COALESCE(descripcion, ''), precio, COALESCE(categoria, '')")
	var s entity.Service
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Nombre, &s.Descripcion, &s.Precio, &s.Categoria,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update servicio: %w", err)
	}
	return &s, nil
}

// Delete elimina un servicio por ID. Devuelve false si no había fila.
func (r *ServiceRepo) Delete(id int64) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM servicios WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete servicio: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

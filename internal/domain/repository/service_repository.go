package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gabodev/marketplace-api/internal/domain/entity"
)

// ServicePatch campos opcionales para actualización parcial de un servicio.
type ServicePatch struct {
	Nombre      *string
	Descripcion *string
	Precio      *decimal.Decimal
	Categoria   *string
}

// Empty indica si el patch no trae ningún campo.
func (p ServicePatch) Empty() bool {
	return p.Nombre == nil && p.Descripcion == nil && p.Precio == nil && p.Categoria == nil
}

// ServiceRepository define el puerto de persistencia para Service (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type ServiceRepository interface {
	Create(service *entity.Service) error
	List() ([]*entity.Service, error)
	GetByID(id int64) (*entity.Service, error)
	UpdatePartial(id int64, patch ServicePatch) (*entity.Service, error)
	Delete(id int64) (bool, error)
}

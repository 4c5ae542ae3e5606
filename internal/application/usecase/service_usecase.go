package usecase

import (
	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para el catálogo de servicios.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create crea un servicio. Precio negativo -> ErrInvalidInput; nombre
// duplicado -> ErrDuplicate (detectado por el store).
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceProjection, error) {
	if in.Nombre == "" || in.Precio == nil || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	service := &entity.Service{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      *in.Precio,
		Categoria:   in.Categoria,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return &dto.ServiceProjection{ID: service.ID, Nombre: service.Nombre, Precio: service.Precio}, nil
}

// List devuelve todos los servicios en orden ascendente de ID.
func (uc *ServiceUseCase) List() (*dto.ServiceListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	servicios := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		servicios = append(servicios, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{
		Message:   "Lista de servicios recuperada con éxito.",
		Total:     len(servicios),
		Servicios: servicios,
	}, nil
}

// GetByID devuelve un servicio, o (nil, nil) si no existe.
func (uc *ServiceUseCase) GetByID(id int64) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// Update aplica una actualización parcial sobre los campos presentes.
// Patch vacío -> ErrInvalidInput. ID inexistente -> (nil, nil).
func (uc *ServiceUseCase) Update(id int64, in dto.UpdateServiceRequest) (*dto.UpdatedServiceResponse, error) {
	if in.Precio != nil && in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	patch := repository.ServicePatch{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Categoria:   in.Categoria,
	}
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.repo.UpdatePartial(id, patch)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return &dto.UpdatedServiceResponse{
		Message:  "Servicio actualizado con éxito.",
		Servicio: dto.UpdatedServiceProjection{ID: service.ID, Nombre: service.Nombre},
	}, nil
}

// Delete elimina un servicio. Devuelve false si el ID no existe.
func (uc *ServiceUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		Precio:      s.Precio,
		Categoria:   s.Categoria,
	}
}

package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gabodev/marketplace-api/internal/application/dto"
	"github.com/gabodev/marketplace-api/internal/domain"
	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

// ProviderUseCase casos de uso de la variante de archivo plano: registro
// append-only, cambio de calificación y listado completo.
type ProviderUseCase struct {
	store repository.ProviderStore
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(store repository.ProviderStore) *ProviderUseCase {
	return &ProviderUseCase{store: store}
}

// Registrar crea un registro de proveedor con los valores por defecto
// (calificación "Buena", verificado false) y lo agrega al archivo.
func (uc *ProviderUseCase) Registrar(in dto.RegistroRequest) (*dto.ProviderResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p := &entity.Provider{
		Tipo:         in.Tipo,
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Telefono:     in.Telefono,
		Ciudad:       in.Ciudad,
		Servicio:     in.Servicio,
		Resena:       in.Resena,
		Experiencia:  in.Experiencia,
		Referencias:  in.Referencias,
		Calificacion: entity.CalificacionBuena,
		Verificado:   false,
	}
	if err := uc.store.Append(p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Calificar cambia la calificación de todos los registros con ese email.
// Devuelve ErrNotFound si ningún registro coincide.
func (uc *ProviderUseCase) Calificar(in dto.CalificarRequest) (*dto.CalificadoResponse, error) {
	n, err := uc.store.UpdateCalificacion(in.Email, in.Calificacion)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.CalificadoResponse{
		Message:      "Calificación actualizada con éxito.",
		Actualizados: n,
	}, nil
}

// Listar devuelve todos los registros en orden de inserción, sin password.
// Nunca falla: un archivo ausente o ilegible produce lista vacía.
func (uc *ProviderUseCase) Listar() ([]dto.ProviderResponse, error) {
	list, err := uc.store.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		Tipo:         p.Tipo,
		Nombre:       p.Nombre,
		Email:        p.Email,
		Telefono:     p.Telefono,
		Ciudad:       p.Ciudad,
		Servicio:     p.Servicio,
		Resena:       p.Resena,
		Experiencia:  p.Experiencia,
		Referencias:  p.Referencias,
		Calificacion: p.Calificacion,
		Verificado:   p.Verificado,
	}
}

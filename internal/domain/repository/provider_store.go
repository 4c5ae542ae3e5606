package repository

import "github.com/gabodev/marketplace-api/internal/domain/entity"

// ProviderStore define el puerto del almacén de proveedores de archivo plano.
type ProviderStore interface {
	// Append agrega un registro al final del archivo.
	Append(p *entity.Provider) error
	// All devuelve todos los registros en orden de inserción. Nunca falla por
	// archivo ausente o ilegible: en ese caso devuelve lista vacía.
	All() ([]*entity.Provider, error)
	// UpdateCalificacion cambia la calificación de todos los registros cuyo
	// email coincide y reescribe el archivo. Devuelve cuántos se actualizaron.
	UpdateCalificacion(email, calificacion string) (int, error)
}

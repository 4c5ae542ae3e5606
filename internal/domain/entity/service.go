package entity

import "github.com/shopspring/decimal"

// Service representa un servicio publicado en el catálogo.
type Service struct {
	ID          int64
	Nombre      string // único en el catálogo
	Descripcion string
	Precio      decimal.Decimal // no negativo
	Categoria   string
}

package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada para crear un servicio. Precio acepta número o
// string JSON (decimal.Decimal deserializa ambos).
type CreateServiceRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   string           `json:"categoria"`
}

// MissingFields devuelve los nombres de los campos obligatorios ausentes.
func (r CreateServiceRequest) MissingFields() []string {
	var missing []string
	if r.Nombre == "" {
		missing = append(missing, "nombre")
	}
	if r.Precio == nil {
		missing = append(missing, "precio")
	}
	return missing
}

// UpdateServiceRequest entrada para actualización parcial de un servicio.
type UpdateServiceRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   *string          `json:"categoria"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
}

// CreatedServiceResponse salida de la creación de un servicio.
type CreatedServiceResponse struct {
	Message  string            `json:"message"`
	Servicio ServiceProjection `json:"servicio"`
}

// ServiceProjection proyección id/nombre/precio devuelta al crear.
type ServiceProjection struct {
	ID     int64           `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// ServiceListResponse listado completo de servicios.
type ServiceListResponse struct {
	Message   string            `json:"message"`
	Total     int               `json:"total"`
	Servicios []ServiceResponse `json:"servicios"`
}

// ServiceDetailResponse salida de un servicio individual.
type ServiceDetailResponse struct {
	Message  string          `json:"message"`
	Servicio ServiceResponse `json:"servicio"`
}

// UpdatedServiceResponse proyección devuelta tras una actualización parcial.
type UpdatedServiceResponse struct {
	Message  string                   `json:"message"`
	Servicio UpdatedServiceProjection `json:"servicio"`
}

// UpdatedServiceProjection proyección id/nombre devuelta al actualizar.
type UpdatedServiceProjection struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// DeletedServiceResponse confirmación de borrado.
type DeletedServiceResponse struct {
	Message   string `json:"message"`
	ServiceID int64  `json:"serviceId"`
}

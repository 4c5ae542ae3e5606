package dto

// RegistroRequest entrada para registrar un proveedor en el almacén de archivo.
// Los campos opcionales ausentes reciben los valores por defecto del dominio.
type RegistroRequest struct {
	Tipo        string `json:"tipo"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Telefono    string `json:"telefono"`
	Ciudad      string `json:"ciudad"`
	Servicio    string `json:"servicio"`
	Resena      string `json:"resena"`
	Experiencia string `json:"experiencia"`
	Referencias string `json:"referencias"`
}

// MissingFields devuelve los nombres de los campos obligatorios ausentes.
func (r RegistroRequest) MissingFields() []string {
	var missing []string
	if r.Nombre == "" {
		missing = append(missing, "nombre")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// CalificarRequest entrada para cambiar la calificación de un proveedor.
// El email identifica al proveedor; si hay registros duplicados se actualizan todos.
type CalificarRequest struct {
	Email        string `json:"email"`
	Calificacion string `json:"calificacion"`
}

// ProviderResponse salida de un registro de proveedor (sin password).
type ProviderResponse struct {
	Tipo         string `json:"tipo"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Ciudad       string `json:"ciudad"`
	Servicio     string `json:"servicio"`
	Resena       string `json:"resena"`
	Experiencia  string `json:"experiencia"`
	Referencias  string `json:"referencias"`
	Calificacion string `json:"calificacion"`
	Verificado   bool   `json:"verificado"`
}

// RegistroResponse salida del registro exitoso de un proveedor.
type RegistroResponse struct {
	Message   string           `json:"message"`
	Proveedor ProviderResponse `json:"proveedor"`
}

// CalificadoResponse salida de la actualización de calificación.
type CalificadoResponse struct {
	Message      string `json:"message"`
	Actualizados int    `json:"actualizados"`
}

package entity

// Calificaciones conocidas para un Provider. El campo es texto libre;
// estas constantes solo documentan los valores habituales.
const (
	CalificacionBuena   = "Buena"
	CalificacionRegular = "Regular"
	CalificacionMala    = "Mala"
)

// Provider representa un proveedor registrado en el almacén de archivo plano
// (una línea JSON por registro, orden de inserción). Es un modelo independiente
// del relacional: el archivo no impone unicidad de email.
type Provider struct {
	Tipo         string `json:"tipo"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"` // bcrypt hash
	Telefono     string `json:"telefono"`
	Ciudad       string `json:"ciudad"`
	Servicio     string `json:"servicio"`
	Resena       string `json:"resena"`
	Experiencia  string `json:"experiencia"`
	Referencias  string `json:"referencias"`
	Calificacion string `json:"calificacion"` // por defecto "Buena"
	Verificado   bool   `json:"verificado"`   // por defecto false
}

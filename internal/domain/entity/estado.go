package entity

// Estados del ciclo de vida de un expediente. Los identificadores numéricos
// son parte del contrato con el frontend y de la tabla `estados`.
const (
	EstadoEnRegistro = 1
	EstadoEnRevision = 2
	EstadoAprobado   = 3
	EstadoRechazado  = 4
)

// Estado entrada del catálogo fijo de estados.
type Estado struct {
	ID     int
	Nombre string
}

// Estados devuelve el catálogo completo en orden de ciclo de vida.
func Estados() []Estado {
	return []Estado{
		{ID: EstadoEnRegistro, Nombre: "EN_REGISTRO"},
		{ID: EstadoEnRevision, Nombre: "EN_REVISION"},
		{ID: EstadoAprobado, Nombre: "APROBADO"},
		{ID: EstadoRechazado, Nombre: "RECHAZADO"},
	}
}

// NombreEstado devuelve el nombre del estado o "DESCONOCIDO" si el id no
// pertenece al catálogo.
func NombreEstado(id int) string {
	for _, e := range Estados() {
		if e.ID == id {
			return e.Nombre
		}
	}
	return "DESCONOCIDO"
}

// EstadoValido indica si el id pertenece al catálogo.
func EstadoValido(id int) bool {
	return id >= EstadoEnRegistro && id <= EstadoRechazado
}

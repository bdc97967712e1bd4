package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de peso aceptadas para un indicio.
const (
	UnidadPesoKg = "kg"
	UnidadPesoG  = "g"
	UnidadPesoLb = "lb"
)

// Indicio es un elemento de evidencia (físico o digital) adjunto a un
// expediente. Pertenece a exactamente un expediente y no lo sobrevive.
type Indicio struct {
	ID                string
	IDExpediente      string
	Codigo            string // único dentro del expediente (comparación exacta)
	IDTipoIndicio     int
	Descripcion       string
	Color             *string
	Tamano            *string
	Peso              *decimal.Decimal
	UnidadPeso        *string // presente si y solo si Peso presente
	UbicacionHallazgo *string
	Observaciones     *string
	IDTecnicoRegistra string
	FechaRegistro     time.Time
}

// TipoIndicio entrada del catálogo fijo de tipos de evidencia.
type TipoIndicio struct {
	ID     int
	Nombre string
}

// TiposIndicio catálogo de solo lectura, no mutable por usuarios.
func TiposIndicio() []TipoIndicio {
	return []TipoIndicio{
		{ID: 1, Nombre: "Arma blanca"},
		{ID: 2, Nombre: "Arma de fuego"},
		{ID: 3, Nombre: "Documento"},
		{ID: 4, Nombre: "Dispositivo electrónico"},
		{ID: 5, Nombre: "Prenda de vestir"},
		{ID: 6, Nombre: "Sustancia"},
		{ID: 7, Nombre: "Huella"},
		{ID: 8, Nombre: "Muestra biológica"},
		{ID: 9, Nombre: "Otro"},
	}
}

// TipoIndicioValido indica si el id pertenece al catálogo.
func TipoIndicioValido(id int) bool {
	for _, t := range TiposIndicio() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// UnidadPesoValida indica si la unidad es una de las aceptadas.
func UnidadPesoValida(u string) bool {
	return u == UnidadPesoKg || u == UnidadPesoG || u == UnidadPesoLb
}

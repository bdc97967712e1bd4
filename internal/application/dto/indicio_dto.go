package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearIndicioRequest alta de indicio sobre un expediente editable.
type CrearIndicioRequest struct {
	IDExpediente      string           `json:"id_expediente"`
	CodigoIndicio     string           `json:"codigo_indicio"`
	IDTipoIndicio     int              `json:"id_tipo_indicio"`
	Descripcion       string           `json:"descripcion"`
	Color             *string          `json:"color"`
	Tamano            *string          `json:"tamano"`
	Peso              *decimal.Decimal `json:"peso"`
	UnidadPeso        *string          `json:"unidad_peso"`
	UbicacionHallazgo *string          `json:"ubicacion_hallazgo"`
	Observaciones     *string          `json:"observaciones"`
}

// IndicioResponse representación de un indicio registrado.
type IndicioResponse struct {
	IDIndicio         string           `json:"id_indicio"`
	IDExpediente      string           `json:"id_expediente"`
	CodigoIndicio     string           `json:"codigo_indicio"`
	IDTipoIndicio     int              `json:"id_tipo_indicio"`
	NombreTipo        string           `json:"tipo_indicio"` // nombre del tipo, no su id
	Descripcion       string           `json:"descripcion"`
	Color             *string          `json:"color,omitempty"`
	Tamano            *string          `json:"tamano,omitempty"`
	Peso              *decimal.Decimal `json:"peso,omitempty"`
	UnidadPeso        *string          `json:"unidad_peso,omitempty"`
	UbicacionHallazgo *string          `json:"ubicacion_hallazgo,omitempty"`
	Observaciones     *string          `json:"observaciones,omitempty"`
	IDTecnicoRegistra string           `json:"id_tecnico_registra"`
	FechaRegistro     time.Time        `json:"fecha_registro"`
}

// TipoIndicioResponse entrada del catálogo de tipos de indicio.
type TipoIndicioResponse struct {
	IDTipoIndicio int    `json:"id_tipo_indicio"`
	NombreTipo    string `json:"nombre_tipo"`
}

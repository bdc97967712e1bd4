package repository

import (
	"context"
	"time"

	"github.com/wilmarbg/dicri-api/internal/domain/entity"
)

// FiltroExpedientes filtros conjuntivos (AND) para el listado.
// Las fechas son límites inclusivos de día calendario sobre fecha_registro.
type FiltroExpedientes struct {
	IDEstado    *int
	FechaInicio *time.Time
	FechaFin    *time.Time
}

// ExpedienteListado modelo de lectura del listado: expediente más los campos
// derivados que consume el frontend (nombres y conteo de indicios).
type ExpedienteListado struct {
	entity.Expediente
	NombreEstado      string
	TecnicoRegistra   string
	TecnicoCorreo     string
	CoordinadorRevisa *string
	TotalIndicios     int
}

// ExpedienteRepository define el puerto de persistencia para Expediente.
// Save y GetForUpdate solo se invocan desde el motor de ciclo de vida, dentro
// de una transacción.
type ExpedienteRepository interface {
	Create(ctx context.Context, e *entity.Expediente) error
	GetByID(ctx context.Context, id string) (*entity.Expediente, error)
	// GetForUpdate lee el expediente bloqueando la fila (SELECT ... FOR UPDATE)
	// para garantizar a lo sumo una transición ganadora por estado lógico.
	GetForUpdate(ctx context.Context, id string) (*entity.Expediente, error)
	Save(ctx context.Context, e *entity.Expediente) error
	// List devuelve expedientes ordenados por fecha_registro descendente.
	List(ctx context.Context, filtro FiltroExpedientes) ([]ExpedienteListado, error)
	// GetListadoByID devuelve el modelo de lectura de un expediente.
	GetListadoByID(ctx context.Context, id string) (*ExpedienteListado, error)
}

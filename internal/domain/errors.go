package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                  = errors.New("recurso no encontrado")
	ErrUsuarioNotFound           = errors.New("usuario no encontrado")
	ErrNoAutenticado             = errors.New("no autenticado")
	ErrProhibido                 = errors.New("acceso denegado")
	ErrValidacion                = errors.New("entrada inválida")
	ErrNumeroExpedienteDuplicado = errors.New("el número de expediente ya existe")
	ErrCodigoIndicioDuplicado    = errors.New("el código de indicio ya existe en el expediente")
	ErrTransicionInvalida        = errors.New("transición de estado inválida")
	ErrAlmacenamiento            = errors.New("error transitorio de almacenamiento")
)

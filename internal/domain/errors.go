package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrSourceUnreadable = errors.New("no se pudo leer la fuente de datos")
	ErrAlreadyMatched   = errors.New("el contrato ya está vinculado a un cliente")
)

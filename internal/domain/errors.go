package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUnknownVariant     = errors.New("variante no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// UnknownVariantError indica que el código escaneado no corresponde a ninguna
// variante del inventario. Aborta el checkout completo.
type UnknownVariantError struct {
	Code string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("variante con código '%s' no encontrada", e.Code)
}

func (e *UnknownVariantError) Unwrap() error { return ErrUnknownVariant }

// InsufficientStockError indica que la cantidad solicitada supera el stock
// disponible al momento de la validación. Incluye el disponible para que el
// caller pueda ofrecer un reintento con cantidad reducida.
type InsufficientStockError struct {
	Code      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s': solicitado %d, disponible %d",
		e.Code, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

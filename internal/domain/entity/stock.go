package entity

import "time"

// StockRecord es el registro de existencias de una variante. Quantity nunca
// baja de cero: la única mutación permitida es el decremento condicional del
// ledger (UPDATE ... WHERE quantity >= solicitado). Reserved e Incoming
// existen en el modelo pero el checkout no los usa.
type StockRecord struct {
	VariantID string
	Quantity  int64
	Reserved  int64
	Incoming  int64
	UpdatedAt time.Time
}

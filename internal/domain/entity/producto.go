package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario.
// FechaCreacion la fija el servidor al crear y es inmutable;
// FechaModificacion es nil hasta la primera actualización.
type Producto struct {
	ID                  string
	Nombre              string
	Descripcion         string
	Precio              decimal.Decimal // NUMERIC en DB, sin deriva de float
	Estado              bool            // true = activo
	UsuarioCreacion     string
	FechaCreacion       time.Time
	UsuarioModificacion string
	FechaModificacion   *time.Time
}

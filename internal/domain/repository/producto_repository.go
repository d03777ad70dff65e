package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
)

// ProductoFilter criterios conjuntivos (AND) para el listado filtrado.
// Los punteros en nil significan "sin restricción".
type ProductoFilter struct {
	Nombre    string // substring, case-insensitive; vacío = sin filtro
	Estado    *bool
	PrecioMin *decimal.Decimal // límite inferior inclusivo
	PrecioMax *decimal.Decimal // límite superior inclusivo
	Limit     int
	Offset    int
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Los listados ordenan por (fecha_creacion, id) ASC para que la paginación
// por offset sea determinista.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	// GetByID devuelve (nil, nil) si el id no existe.
	GetByID(id string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	// Filter devuelve la página y el total de filas que cumplen el filtro
	// ignorando Limit/Offset. Son dos consultas sin transacción común.
	Filter(f ProductoFilter) ([]*entity.Producto, int, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
}

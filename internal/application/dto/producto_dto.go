package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
// Precio y Estado son punteros para distinguir "ausente" de cero/false.
type CreateProductoRequest struct {
	Nombre          string           `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion     string           `json:"descripcion"`
	Precio          *decimal.Decimal `json:"precio" validate:"required"`
	Estado          *bool            `json:"estado" validate:"required"`
	UsuarioCreacion string           `json:"usuarioCreacion"`
}

// UpdateProductoRequest entrada para actualizar: reemplazo completo de los
// cuatro campos mutables más la identidad del modificador.
type UpdateProductoRequest struct {
	Nombre              string           `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion         string           `json:"descripcion"`
	Precio              *decimal.Decimal `json:"precio" validate:"required"`
	Estado              *bool            `json:"estado" validate:"required"`
	UsuarioModificacion string           `json:"usuarioModificacion"`
}

// FilterProductosRequest parámetros de query del listado filtrado.
// Todos los filtros son opcionales y se combinan con AND.
type FilterProductosRequest struct {
	Nombre    string `query:"nombre"`
	Estado    string `query:"estado" validate:"omitempty,oneof=all active inactive"`
	PrecioMin string `query:"precioMin"`
	PrecioMax string `query:"precioMax"`
	Page      int    `query:"page"`
	PageSize  int    `query:"pageSize"`
}

// ProductoResponse salida de un producto. FechaModificacion es null hasta la
// primera actualización.
type ProductoResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion"`
	Precio              decimal.Decimal `json:"precio"`
	Estado              bool            `json:"estado"`
	UsuarioCreacion     string          `json:"usuarioCreacion"`
	FechaCreacion       time.Time       `json:"fechaCreacion"`
	UsuarioModificacion string          `json:"usuarioModificacion"`
	FechaModificacion   *time.Time      `json:"fechaModificacion"`
}

// FilteredProductosResponse página de resultados con el total sin paginar.
type FilteredProductosResponse struct {
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"pageSize"`
	Productos []ProductoResponse `json:"productos"`
}

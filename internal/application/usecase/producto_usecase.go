package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-productos-api/internal/application/dto"
	"github.com/jhoicas/gestion-productos-api/internal/domain"
	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
	"github.com/jhoicas/gestion-productos-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD y listado filtrado de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto. El servidor genera el id y fija FechaCreacion;
// FechaModificacion queda en nil hasta la primera actualización.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio == nil || in.Estado == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	producto := &entity.Producto{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Descripcion:     in.Descripcion,
		Precio:          *in.Precio,
		Estado:          *in.Estado,
		UsuarioCreacion: in.UsuarioCreacion,
		FechaCreacion:   time.Now().UTC(),
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List devuelve todos los productos ordenados por fecha de creación.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Filter arma el filtro conjuntivo y devuelve la página solicitada junto al
// total de coincidencias sin paginar.
func (uc *ProductoUseCase) Filter(in dto.FilterProductosRequest) (*dto.FilteredProductosResponse, error) {
	page := in.Page
	if page < 1 {
		page = dto.DefaultPage
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = dto.DefaultPageSize
	}
	if pageSize > dto.MaxPageSize {
		pageSize = dto.MaxPageSize
	}

	f := repository.ProductoFilter{
		Nombre: in.Nombre,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	switch in.Estado {
	case "", "all":
		// sin restricción
	case "active":
		t := true
		f.Estado = &t
	case "inactive":
		fa := false
		f.Estado = &fa
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioMin != "" {
		min, err := decimal.NewFromString(in.PrecioMin)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.PrecioMin = &min
	}
	if in.PrecioMax != "" {
		max, err := decimal.NewFromString(in.PrecioMax)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.PrecioMax = &max
	}

	list, total, err := uc.repo.Filter(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.FilteredProductosResponse{
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		Productos: items,
	}, nil
}

// Update reemplaza los campos mutables y estampa FechaModificacion y el
// modificador. ID, UsuarioCreacion y FechaCreacion no se tocan.
// Devuelve (nil, nil) si el producto no existe.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio == nil || in.Estado == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	producto.Nombre = in.Nombre
	producto.Descripcion = in.Descripcion
	producto.Precio = *in.Precio
	producto.Estado = *in.Estado
	producto.UsuarioModificacion = in.UsuarioModificacion
	now := time.Now().UTC()
	producto.FechaModificacion = &now
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto de forma permanente.
// Devuelve ErrNotFound si el id no existe.
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		Precio:              p.Precio,
		Estado:              p.Estado,
		UsuarioCreacion:     p.UsuarioCreacion,
		FechaCreacion:       p.FechaCreacion,
		UsuarioModificacion: p.UsuarioModificacion,
		FechaModificacion:   p.FechaModificacion,
	}
}

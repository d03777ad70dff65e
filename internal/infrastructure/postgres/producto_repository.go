package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
	"github.com/jhoicas/gestion-productos-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, precio, estado, usuario_creacion, fecha_creacion, usuario_modificacion, fecha_modificacion`

// Orden fijo de todos los listados: sin él, la paginación por offset podría
// repetir o saltarse filas entre páginas.
const productoOrder = `ORDER BY fecha_creacion ASC, id ASC`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Estado,
		producto.UsuarioCreacion, producto.FechaCreacion, producto.UsuarioModificacion, producto.FechaModificacion,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Estado,
		&p.UsuarioCreacion, &p.FechaCreacion, &p.UsuarioModificacion, &p.FechaModificacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos en el orden canónico.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos ` + productoOrder
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// Filter ejecuta la consulta de conteo y la de página con el mismo WHERE.
// Son dos round trips sin transacción común: una escritura concurrente entre
// ambos puede dejar total inconsistente con la página. Se acepta.
func (r *ProductoRepo) Filter(f repository.ProductoFilter) ([]*entity.Producto, int, error) {
	where, args := buildFilterWhere(f)

	var total int
	countQuery := `SELECT count(*) FROM productos ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	pageQuery := fmt.Sprintf(`SELECT `+productoColumns+` FROM productos %s %s LIMIT $%d OFFSET $%d`,
		where, productoOrder, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), pageQuery, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("filter productos: %w", err)
	}
	defer rows.Close()

	list, err := scanProductos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update reemplaza los campos mutables más los de auditoría de modificación.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio = $4, estado = $5, usuario_modificacion = $6, fecha_modificacion = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Estado,
		producto.UsuarioModificacion, producto.FechaModificacion,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID (borrado físico, sin tombstone).
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// buildFilterWhere compone los predicados conjuntivos del filtro como
// cláusula WHERE parametrizada. Devuelve cadena vacía si no hay filtros.
func buildFilterWhere(f repository.ProductoFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Nombre != "" {
		args = append(args, "%"+f.Nombre+"%")
		conds = append(conds, fmt.Sprintf("nombre ILIKE $%d", len(args)))
	}
	if f.Estado != nil {
		args = append(args, *f.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if f.PrecioMin != nil {
		args = append(args, *f.PrecioMin)
		conds = append(conds, fmt.Sprintf("precio >= $%d", len(args)))
	}
	if f.PrecioMax != nil {
		args = append(args, *f.PrecioMax)
		conds = append(conds, fmt.Sprintf("precio <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Estado,
			&p.UsuarioCreacion, &p.FechaCreacion, &p.UsuarioModificacion, &p.FechaModificacion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-productos-api/internal/application/auth"
	"github.com/jhoicas/gestion-productos-api/internal/application/dto"
	"github.com/jhoicas/gestion-productos-api/internal/application/usecase"
	"github.com/jhoicas/gestion-productos-api/internal/domain"
	"github.com/jhoicas/gestion-productos-api/internal/domain/entity"
	"github.com/jhoicas/gestion-productos-api/internal/domain/repository"
	"github.com/jhoicas/gestion-productos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/gestion-productos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type memProductoRepo struct {
	byID map[string]*entity.Producto
}

func (r *memProductoRepo) Create(p *entity.Producto) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductoRepo) List() ([]*entity.Producto, error) {
	return r.ordered(), nil
}

func (r *memProductoRepo) Filter(f repository.ProductoFilter) ([]*entity.Producto, int, error) {
	var matches []*entity.Producto
	for _, p := range r.ordered() {
		if f.Nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(f.Nombre)) {
			continue
		}
		if f.Estado != nil && p.Estado != *f.Estado {
			continue
		}
		if f.PrecioMin != nil && p.Precio.LessThan(*f.PrecioMin) {
			continue
		}
		if f.PrecioMax != nil && p.Precio.GreaterThan(*f.PrecioMax) {
			continue
		}
		matches = append(matches, p)
	}
	total := len(matches)
	if f.Offset >= total {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matches[f.Offset:end], total, nil
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductoRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memProductoRepo) ordered() []*entity.Producto {
	list := make([]*entity.Producto, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].FechaCreacion.Equal(list[j].FechaCreacion) {
			return list[i].FechaCreacion.Before(list[j].FechaCreacion)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con el router completo y repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	userRepo := &memUserRepo{byEmail: make(map[string]*entity.User)}
	productoRepo := &memProductoRepo{byID: make(map[string]*entity.Producto)}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, Issuer: testJWTIssuer})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	reporteUC := usecase.NewReporteUseCase(productoRepo, pdf.NewMarotoReporteGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		ProductoUC: productoUC,
		ReporteUC:  reporteUC,
		JWTSecret:  testJWTSecret,
		JWTIssuer:  testJWTIssuer,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "ana", "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeJSON[dto.LoginResponse](t, resp).Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicadoRetorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "ana", "email": "ana@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "otra", "email": "ana@example.com", "password": "password456",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "email duplicado responde 400, no 409")
}

func TestLogin_CredencialesInvalidasRetorna401(t *testing.T) {
	app := buildTestApp()
	registerAndLogin(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@example.com", "password": "incorrecta",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nadie@example.com", "password": "password123",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"email desconocido y password incorrecto responden igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_SinTokenRetorna401(t *testing.T) {
	app := buildTestApp()

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/productos/"},
		{http.MethodGet, "/api/productos/filter"},
		{http.MethodGet, "/api/productos/algun-id"},
		{http.MethodPost, "/api/productos/"},
		{http.MethodPut, "/api/productos/algun-id"},
		{http.MethodDelete, "/api/productos/algun-id"},
		// El reporte PDF también exige token, como el resto del grupo.
		{http.MethodGet, "/api/productos/reporte-pdf"},
	} {
		resp := doJSON(t, app, route.method, route.path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s debe exigir Bearer token", route.method, route.path)
	}
}

func TestProductos_CicloCompleto(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "ana@example.com")

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/productos/", token, fiber.Map{
		"nombre": "Widget", "precio": "9.99", "estado": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	location := resp.Header.Get("Location")
	created := decodeJSON[dto.ProductoResponse](t, resp)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "/api/productos/"+created.ID, location)
	assert.True(t, created.Precio.Equal(decimalFromString(t, "9.99")), "round-trip decimal exacto")
	assert.Nil(t, created.FechaModificacion)

	// Filtrar por substring del nombre
	resp = doJSON(t, app, http.MethodGet, "/api/productos/filter?nombre=Wid", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decodeJSON[dto.FilteredProductosResponse](t, resp)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, created.ID, filtered.Productos[0].ID)

	// Actualizar precio
	resp = doJSON(t, app, http.MethodPut, "/api/productos/"+created.ID, token, fiber.Map{
		"nombre": "Widget", "precio": "14.99", "estado": true,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Obtener por id: precio nuevo y fechaModificacion no nula
	resp = doJSON(t, app, http.MethodGet, "/api/productos/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeJSON[dto.ProductoResponse](t, resp)
	assert.True(t, got.Precio.Equal(decimalFromString(t, "14.99")))
	require.NotNil(t, got.FechaModificacion)
	assert.False(t, got.FechaModificacion.Before(got.FechaCreacion))
	assert.Equal(t, created.FechaCreacion, got.FechaCreacion, "la creación no cambia con el update")

	// Eliminar y verificar 404
	resp = doJSON(t, app, http.MethodDelete, "/api/productos/"+created.ID, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/productos/"+created.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_UpdateYDeleteInexistenteRetornan404(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPut, "/api/productos/no-existe", token, fiber.Map{
		"nombre": "X", "precio": "1", "estado": true,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/productos/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeJSON[[]dto.ProductoResponse](t, resp)
	assert.Empty(t, list, "un update fallido no debe crear registros")

	resp = doJSON(t, app, http.MethodDelete, "/api/productos/no-existe", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_CreateInvalidoRetorna400(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "ana@example.com")

	// estado ausente
	resp := doJSON(t, app, http.MethodPost, "/api/productos/", token, fiber.Map{
		"nombre": "Widget", "precio": "9.99",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// precio negativo
	resp = doJSON(t, app, http.MethodPost, "/api/productos/", token, fiber.Map{
		"nombre": "Widget", "precio": "-1", "estado": true,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_FilterPaginado(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "ana@example.com")

	for i := 0; i < 15; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/productos/", token, fiber.Map{
			"nombre": fmt.Sprintf("Producto %02d", i), "precio": "1", "estado": true,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/productos/filter?page=2&pageSize=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeJSON[dto.FilteredProductosResponse](t, resp)

	assert.Equal(t, 15, out.Total)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 10, out.PageSize)
	assert.Len(t, out.Productos, 5)
}

func TestProductos_ReportePDF(t *testing.T) {
	app := buildTestApp()
	token := registerAndLogin(t, app, "ana@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/productos/", token, fiber.Map{
		"nombre": "Widget", "precio": "9.99", "estado": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/productos/reporte-pdf", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

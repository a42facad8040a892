//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"petmarket/internal/config"
	"petmarket/internal/infra"
	"petmarket/internal/model"
	"petmarket/internal/router"
	"petmarket/internal/storage"
	"petmarket/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	client *http.Client
	db     *gorm.DB
	token  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("petmarket_test"),
		tcPostgres.WithUsername("petmarket"),
		tcPostgres.WithPassword("petmarket"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		CostoEnvio:         2990,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Spaces sin credenciales: las subidas fallan como advertencia, nunca
	// rompen la operación principal.
	almacen := storage.NewSpaces(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.UsuarioAdmin{
		Nombre: "Admin E2E", Email: "admin@e2e.test",
		PasswordHash: string(hash), Rol: "admin", Activo: true,
	}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb, almacen, dispatcher))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	env := &testEnv{server: srv, client: client, db: db}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	resp := env.doJSON(t, "POST", "/v1/auth/admin/login",
		map[string]string{"email": "admin@e2e.test", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	env.token = login.AccessToken

	return env
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.server.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) doForm(t *testing.T, method, path string, fields map[string]string, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestE2ECatalogoCompleto(t *testing.T) {
	env := setupTestEnv(t)

	// Crear categoría
	var cat struct {
		ID    string `json:"id"`
		Nivel int    `json:"nivel"`
		Slug  string `json:"slug"`
	}
	resp := env.doJSON(t, "POST", "/v1/admin/categorias",
		map[string]any{"nombre": "Perros"}, env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &cat)
	assert.Equal(t, 1, cat.Nivel)
	assert.Equal(t, "perros", cat.Slug)

	// Crear producto (multipart sin imagen)
	var prod struct {
		ID     string `json:"id"`
		Precio int64  `json:"precio"`
	}
	resp = env.doForm(t, "POST", "/v1/admin/productos", map[string]string{
		"categoria_id": cat.ID,
		"sku":          "E2E-001",
		"nombre":       "Alimento Premium 15kg",
		"precio":       "35990",
		"stock":        "10",
	}, env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeJSON(t, resp, &prod)
	assert.Equal(t, int64(35990), prod.Precio)

	// Catálogo público lo lista por slug de categoría
	var listado struct {
		Data  []map[string]any `json:"data"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
	}
	resp = env.doJSON(t, "GET", "/v1/catalogo?categoria_slug=perros", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &listado)
	assert.Equal(t, int64(1), listado.Total)

	// Página fuera de rango colapsa a la última
	resp = env.doJSON(t, "GET", "/v1/catalogo?page=99", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &listado)
	assert.Equal(t, 1, listado.Page)
	assert.Len(t, listado.Data, 1)

	// Detalle
	resp = env.doJSON(t, "GET", "/v1/catalogo/"+prod.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Categoría desconocida: vacío, no error
	resp = env.doJSON(t, "GET", "/v1/catalogo?categoria_slug=no-existe", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &listado)
	assert.Equal(t, int64(0), listado.Total)
	assert.Empty(t, listado.Data)
}

func TestE2ECarritoSesion(t *testing.T) {
	env := setupTestEnv(t)

	// Seed directo: categoría + producto
	cat := &model.Categoria{Nombre: "Gatos", Slug: "gatos", Nivel: 1, Activa: true}
	require.NoError(t, env.db.Create(cat).Error)
	prod := &model.Producto{
		CategoriaID: cat.ID, SKU: "CART-001", Nombre: "Arena Premium",
		Precio: 8990, Stock: 50, Estado: model.EstadoActivo,
	}
	require.NoError(t, env.db.Create(prod).Error)

	// Carrito vacío
	var carrito struct {
		Items          []map[string]any `json:"items"`
		TotalProductos int              `json:"total_productos"`
		Subtotal       int64            `json:"subtotal"`
		Total          int64            `json:"total"`
		Vacio          bool             `json:"vacio"`
	}
	resp := env.doJSON(t, "GET", "/v1/carrito", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &carrito)
	assert.True(t, carrito.Vacio)

	// Agregar dos veces acumula; la cookie de sesión viaja en el jar
	var op struct {
		Success        bool   `json:"success"`
		NombreProducto string `json:"nombre_producto"`
		TotalProductos int    `json:"total_productos"`
		Subtotal       int64  `json:"subtotal"`
	}
	resp = env.doJSON(t, "POST", "/v1/carrito/agregar",
		map[string]any{"producto_id": prod.ID.String(), "cantidad": 2}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &op)
	assert.True(t, op.Success)
	assert.Equal(t, "Arena Premium", op.NombreProducto)
	assert.Equal(t, 2, op.TotalProductos)

	resp = env.doJSON(t, "POST", "/v1/carrito/agregar",
		map[string]any{"producto_id": prod.ID.String(), "cantidad": 3}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &op)
	assert.Equal(t, 5, op.TotalProductos)
	assert.Equal(t, int64(5*8990), op.Subtotal)

	// El precio del carrito es el snapshot, no el catálogo vivo
	require.NoError(t, env.db.Model(prod).Update("precio", 99990).Error)
	resp = env.doJSON(t, "GET", "/v1/carrito", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &carrito)
	assert.Equal(t, int64(5*8990), carrito.Subtotal)
	assert.Equal(t, int64(5*8990+2990), carrito.Total)

	// Cantidad cero elimina la línea
	resp = env.doJSON(t, "POST", "/v1/carrito/actualizar",
		map[string]any{"producto_id": prod.ID.String(), "cantidad": 0}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &op)
	assert.Equal(t, 0, op.TotalProductos)

	// Producto inexistente en agregar: 404
	resp = env.doJSON(t, "POST", "/v1/carrito/agregar",
		map[string]any{"producto_id": "f4b7f3a0-0000-0000-0000-000000000000", "cantidad": 1}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestE2ERegistroYLogin(t *testing.T) {
	env := setupTestEnv(t)

	registro := map[string]any{
		"rut":              "12345678-9",
		"nombres":          "Pedro Pablo",
		"apellido_paterno": "Rojas",
		"email":            "pedro@e2e.test",
		"password":         "clave12345",
	}
	resp := env.doJSON(t, "POST", "/v1/auth/registro", registro, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	// RUT duplicado
	registro["email"] = "otro@e2e.test"
	resp = env.doJSON(t, "POST", "/v1/auth/registro", registro, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()

	// Login correcto
	resp = env.doJSON(t, "POST", "/v1/auth/login",
		map[string]string{"email": "pedro@e2e.test", "password": "clave12345"}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Credenciales malas: mismo mensaje para email y password equivocados
	leerDetalle := func(resp *http.Response) string {
		var e struct {
			Detail string `json:"detail"`
		}
		decodeJSON(t, resp, &e)
		return e.Detail
	}
	r1 := env.doJSON(t, "POST", "/v1/auth/login",
		map[string]string{"email": "pedro@e2e.test", "password": "equivocada1"}, "")
	r2 := env.doJSON(t, "POST", "/v1/auth/login",
		map[string]string{"email": "nadie@e2e.test", "password": "clave12345"}, "")
	assert.Equal(t, http.StatusUnauthorized, r1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, r2.StatusCode)
	assert.Equal(t, leerDetalle(r1), leerDetalle(r2))

	// Un cliente no entra al panel admin
	resp = env.doJSON(t, "POST", "/v1/auth/login",
		map[string]string{"email": "pedro@e2e.test", "password": "clave12345"}, "")
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)
	req, err := http.NewRequest("GET", env.server.URL+"/v1/admin/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	r3, err := env.client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, r3.StatusCode)
	_ = r3.Body.Close()
}

func TestE2EDashboard(t *testing.T) {
	env := setupTestEnv(t)

	cat := &model.Categoria{Nombre: "Aves", Slug: "aves", Nivel: 1, Activa: true}
	require.NoError(t, env.db.Create(cat).Error)
	require.NoError(t, env.db.Create(&model.Producto{
		CategoriaID: cat.ID, SKU: "DASH-1", Nombre: "Jaula",
		Precio: 19990, Stock: 3, Estado: model.EstadoActivo,
	}).Error)

	var resumen struct {
		TotalProductos     int64 `json:"total_productos"`
		ProductosStockBajo int64 `json:"productos_stock_bajo"`
		TotalCategorias    int64 `json:"total_categorias"`
	}
	resp := env.doJSON(t, "GET", "/v1/admin/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &resumen)
	assert.Equal(t, int64(1), resumen.TotalProductos)
	assert.Equal(t, int64(1), resumen.ProductosStockBajo)
	assert.Equal(t, int64(1), resumen.TotalCategorias)

	// Export PDF
	resp = env.doJSON(t, "GET", "/v1/admin/catalogo/pdf", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), fmt.Sprintf("got %q", body[:8]))
}

package service

import (
	"context"
	"io"
	"strings"

	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"
	"petmarket/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	list := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		list = append(list, *c)
	}
	return list, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorSlug(_ context.Context, slug string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) ContarHijas(_ context.Context, padreID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.categorias {
		if c.CategoriaPadreID != nil && *c.CategoriaPadreID == padreID {
			n++
		}
	}
	return n, nil
}

func (r *stubCategoriaRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.categorias)), nil
}

func (r *stubCategoriaRepo) ContarActivas(_ context.Context) (int64, error) {
	var n int64
	for _, c := range r.categorias {
		if c.Activa {
			n++
		}
	}
	return n, nil
}

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindBySKU(_ context.Context, sku string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, int, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if filter.Estado != "" && filter.Estado != "all" && p.Estado != filter.Estado {
			continue
		}
		if filter.CategoriaID != "" && p.CategoriaID.String() != filter.CategoriaID {
			continue
		}
		out = append(out, *p)
	}
	total := int64(len(out))
	return out, total, repository.ClampPage(filter.Page, total, repository.PageSize), nil
}

func (r *stubProductoRepo) Destacados(_ context.Context, limit int) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Estado == model.EstadoActivo && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Relacionados(_ context.Context, categoriaID, excluirID uuid.UUID, limit int) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID && p.ID != excluirID && p.Estado == model.EstadoActivo && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) ContarPorCategoria(_ context.Context, categoriaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) ContarPorMarca(_ context.Context, marcaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.MarcaID != nil && *p.MarcaID == marcaID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.productos)), nil
}

func (r *stubProductoRepo) ContarActivos(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.Estado == model.EstadoActivo {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) ContarStockBajo(_ context.Context, umbral int) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.Estado == model.EstadoActivo && p.Stock < umbral {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) Todos(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

type stubMarcaRepo struct {
	marcas map[uuid.UUID]*model.Marca
}

func newStubMarcaRepo() *stubMarcaRepo {
	return &stubMarcaRepo{marcas: make(map[uuid.UUID]*model.Marca)}
}

func (r *stubMarcaRepo) Crear(_ context.Context, m *model.Marca) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.marcas[m.ID] = m
	return nil
}

func (r *stubMarcaRepo) Listar(_ context.Context) ([]model.Marca, error) {
	out := make([]model.Marca, 0, len(r.marcas))
	for _, m := range r.marcas {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMarcaRepo) ListarActivas(_ context.Context, limit int) ([]model.Marca, error) {
	var out []model.Marca
	for _, m := range r.marcas {
		if m.Activa && (limit <= 0 || len(out) < limit) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMarcaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Marca, error) {
	m, ok := r.marcas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMarcaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Marca, error) {
	for _, m := range r.marcas {
		if strings.EqualFold(m.Nombre, nombre) {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMarcaRepo) Actualizar(_ context.Context, m *model.Marca) error {
	r.marcas[m.ID] = m
	return nil
}

func (r *stubMarcaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.marcas, id)
	return nil
}

func (r *stubMarcaRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.marcas)), nil
}

func (r *stubMarcaRepo) ContarActivas(_ context.Context) (int64, error) {
	var n int64
	for _, m := range r.marcas {
		if m.Activa {
			n++
		}
	}
	return n, nil
}

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.ClientePersona
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.ClientePersona)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.ClientePersona) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*model.ClientePersona, error) {
	for _, c := range r.clientes {
		if strings.EqualFold(c.Email, email) && c.Activo {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByRUT(_ context.Context, rut string) (*model.ClientePersona, error) {
	for _, c := range r.clientes {
		if c.RUT == rut {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ClientePersona, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

type stubAdminRepo struct {
	admins map[uuid.UUID]*model.UsuarioAdmin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[uuid.UUID]*model.UsuarioAdmin)}
}

func (r *stubAdminRepo) Create(_ context.Context, u *model.UsuarioAdmin) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.admins[u.ID] = u
	return nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*model.UsuarioAdmin, error) {
	for _, u := range r.admins {
		if strings.EqualFold(u.Email, email) && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UsuarioAdmin, error) {
	u, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubAdminRepo) Update(_ context.Context, u *model.UsuarioAdmin) error {
	r.admins[u.ID] = u
	return nil
}

// ── Storage / queue stubs ────────────────────────────────────────────────────

// stubAlmacen records uploads and deletes in memory; fallarEliminar forces
// delete failures to exercise the cleanup-queue path.
type stubAlmacen struct {
	subidos        []string
	eliminados     []string
	fallarSubida   bool
	fallarEliminar bool
}

func (a *stubAlmacen) Subir(_ context.Context, _ io.Reader, _ int64, nombreArchivo, prefijo string, _ bool) storage.Resultado {
	if a.fallarSubida {
		return storage.Resultado{Success: false, Message: "proveedor caído"}
	}
	path := storage.NombreSanitizado(nombreArchivo, prefijo)
	a.subidos = append(a.subidos, path)
	return storage.Resultado{Success: true, Path: path, URL: "https://cdn.test/" + path, Message: "ok"}
}

func (a *stubAlmacen) Eliminar(_ context.Context, path string) storage.ResultadoEliminacion {
	if a.fallarEliminar {
		return storage.ResultadoEliminacion{Success: false, Message: "proveedor caído"}
	}
	a.eliminados = append(a.eliminados, path)
	return storage.ResultadoEliminacion{Success: true, Message: "ok"}
}

func (a *stubAlmacen) URLPublica(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return "https://cdn.test/" + path
}

// stubCola captures enqueued jobs.
type stubCola struct {
	limpiezas   []string
	bienvenidas []string
}

func (c *stubCola) EncolarLimpieza(_ context.Context, path string) error {
	c.limpiezas = append(c.limpiezas, path)
	return nil
}

func (c *stubCola) EncolarBienvenida(_ context.Context, email, _ string) error {
	c.bienvenidas = append(c.bienvenidas, email)
	return nil
}

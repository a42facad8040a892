package repository

import (
	"context"

	"petmarket/internal/dto"
	"petmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindBySKU(ctx context.Context, sku string) (*model.Producto, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, int, error)
	Destacados(ctx context.Context, limit int) ([]model.Producto, error)
	Relacionados(ctx context.Context, categoriaID, excluirID uuid.UUID, limit int) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ContarPorCategoria(ctx context.Context, categoriaID uuid.UUID) (int64, error)
	ContarPorMarca(ctx context.Context, marcaID uuid.UUID) (int64, error)
	Contar(ctx context.Context) (int64, error)
	ContarActivos(ctx context.Context) (int64, error)
	ContarStockBajo(ctx context.Context, umbral int) (int64, error)
	Todos(ctx context.Context) ([]model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Marca").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) FindBySKU(ctx context.Context, sku string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	if len(ids) == 0 {
		return productos, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&productos).Error
	return productos, err
}

// List applies the catalog filters, counts the matching rows and returns the
// page of products plus the clamped page number actually served.
func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, int, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	// Estado filter: "all" = todos, "" = activos (default), anything else exact match
	switch filter.Estado {
	case "all":
		// no filter
	case "":
		q = q.Where("estado = ?", model.EstadoActivo)
	default:
		q = q.Where("estado = ?", filter.Estado)
	}

	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.MarcaID != "" {
		q = q.Where("marca_id = ?", filter.MarcaID)
	}
	if filter.Busqueda != "" {
		like := "%" + filter.Busqueda + "%"
		q = q.Where("nombre ILIKE ? OR sku ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, 1, err
	}

	page := ClampPage(filter.Page, total, PageSize)
	offset := (page - 1) * PageSize
	err := q.Preload("Categoria").Preload("Marca").
		Order("nombre ASC").Limit(PageSize).Offset(offset).Find(&productos).Error
	return productos, total, page, err
}

func (r *productoRepo) Destacados(ctx context.Context, limit int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.EstadoActivo).
		Preload("Categoria").Preload("Marca").
		Order("created_at DESC").Limit(limit).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Relacionados(ctx context.Context, categoriaID, excluirID uuid.UUID, limit int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("categoria_id = ? AND id <> ? AND estado = ?", categoriaID, excluirID, model.EstadoActivo).
		Preload("Categoria").Preload("Marca").
		Order("created_at DESC").Limit(limit).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) ContarPorCategoria(ctx context.Context, categoriaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("categoria_id = ?", categoriaID).Count(&n).Error
	return n, err
}

func (r *productoRepo) ContarPorMarca(ctx context.Context, marcaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("marca_id = ?", marcaID).Count(&n).Error
	return n, err
}

func (r *productoRepo) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&n).Error
	return n, err
}

func (r *productoRepo) ContarActivos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("estado = ?", model.EstadoActivo).Count(&n).Error
	return n, err
}

func (r *productoRepo) ContarStockBajo(ctx context.Context, umbral int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("estado = ? AND stock < ?", model.EstadoActivo, umbral).Count(&n).Error
	return n, err
}

// Todos returns every product ordered by category and name, used by the
// catalog PDF export.
func (r *productoRepo) Todos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Marca").
		Joins("LEFT JOIN categorias ON categorias.id = productos.categoria_id").
		Order("categorias.nombre ASC, productos.nombre ASC").
		Find(&productos).Error
	return productos, err
}

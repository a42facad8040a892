package repository

import (
	"context"

	"petmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarcaRepository defines CRUD operations for Marca.
type MarcaRepository interface {
	Crear(ctx context.Context, m *model.Marca) error
	Listar(ctx context.Context) ([]model.Marca, error)
	ListarActivas(ctx context.Context, limit int) ([]model.Marca, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Marca, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Marca, error)
	Actualizar(ctx context.Context, m *model.Marca) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	Contar(ctx context.Context) (int64, error)
	ContarActivas(ctx context.Context) (int64, error)
}

type marcaRepository struct{ db *gorm.DB }

func NewMarcaRepository(db *gorm.DB) MarcaRepository {
	return &marcaRepository{db: db}
}

func (r *marcaRepository) Crear(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepository) Listar(ctx context.Context) ([]model.Marca, error) {
	var list []model.Marca
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *marcaRepository) ListarActivas(ctx context.Context, limit int) ([]model.Marca, error) {
	var list []model.Marca
	q := r.db.WithContext(ctx).Where("activa = true").Order("nombre asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *marcaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *marcaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *marcaRepository) Actualizar(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marcaRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Marca{}, "id = ?", id).Error
}

func (r *marcaRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Marca{}).Count(&n).Error
	return n, err
}

func (r *marcaRepository) ContarActivas(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Marca{}).
		Where("activa = true").Count(&n).Error
	return n, err
}

package repository

import (
	"context"

	"petmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.ClientePersona) error
	FindByEmail(ctx context.Context, email string) (*model.ClientePersona, error)
	FindByRUT(ctx context.Context, rut string) (*model.ClientePersona, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClientePersona, error)
	Contar(ctx context.Context) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.ClientePersona) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByEmail(ctx context.Context, email string) (*model.ClientePersona, error) {
	var c model.ClientePersona
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&c).Error
	return &c, err
}

func (r *clienteRepo) FindByRUT(ctx context.Context, rut string) (*model.ClientePersona, error) {
	var c model.ClientePersona
	err := r.db.WithContext(ctx).Where("rut = ?", rut).First(&c).Error
	return &c, err
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ClientePersona, error) {
	var c model.ClientePersona
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ClientePersona{}).Count(&n).Error
	return n, err
}

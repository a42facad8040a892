package repository

import (
	"context"

	"petmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioAdminRepository interface {
	Create(ctx context.Context, u *model.UsuarioAdmin) error
	FindByEmail(ctx context.Context, email string) (*model.UsuarioAdmin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UsuarioAdmin, error)
	Update(ctx context.Context, u *model.UsuarioAdmin) error
}

type usuarioAdminRepo struct{ db *gorm.DB }

func NewUsuarioAdminRepository(db *gorm.DB) UsuarioAdminRepository {
	return &usuarioAdminRepo{db: db}
}

func (r *usuarioAdminRepo) Create(ctx context.Context, u *model.UsuarioAdmin) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioAdminRepo) FindByEmail(ctx context.Context, email string) (*model.UsuarioAdmin, error) {
	var u model.UsuarioAdmin
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&u).Error
	return &u, err
}

func (r *usuarioAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UsuarioAdmin, error) {
	var u model.UsuarioAdmin
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *usuarioAdminRepo) Update(ctx context.Context, u *model.UsuarioAdmin) error {
	return r.db.WithContext(ctx).Save(u).Error
}

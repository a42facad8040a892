package repository

import (
	"context"

	"petmarket/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Contar(ctx context.Context) (int64, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Count(&n).Error
	return n, err
}

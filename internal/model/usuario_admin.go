package model

import (
	"time"

	"github.com/google/uuid"
)

// UsuarioAdmin is a back-office user with access to the dashboard.
type UsuarioAdmin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'admin'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UsuarioAdmin) TableName() string { return "usuarios_admin" }

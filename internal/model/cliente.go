package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientePersona is a registered storefront customer.
type ClientePersona struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RUT             string    `gorm:"uniqueIndex;not null"`
	Nombres         string    `gorm:"not null"`
	ApellidoPaterno string    `gorm:"not null"`
	ApellidoMaterno string
	Email           string `gorm:"uniqueIndex;not null"`
	Telefono        string
	PasswordHash    string `gorm:"not null"`
	Activo          bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ClientePersona) TableName() string { return "clientes_persona" }

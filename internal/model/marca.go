package model

import (
	"time"

	"github.com/google/uuid"
)

// Marca is a product brand. LogoURL follows the same convention as
// Producto.ImagenURL: bucket-relative path under "marcas/".
type Marca struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	LogoURL     string  `gorm:"not null;default:''"`
	SitioWeb    *string
	Slug        string `gorm:"uniqueIndex;not null"`
	Activa      bool   `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Marca) TableName() string { return "marcas" }

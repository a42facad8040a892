package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados que puede tomar un producto en el catálogo.
const (
	EstadoActivo        = "activo"
	EstadoInactivo      = "inactivo"
	EstadoDescontinuado = "descontinuado"
)

// Producto is a catalog item. Precio and Stock are non-negative integers
// (CLP has no fractional unit). ImagenURL holds a bucket-relative path
// (productos/alimento-perro.jpg) or, for legacy rows, a full external URL.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;index"`
	MarcaID     *uuid.UUID `gorm:"type:uuid;index"`
	SKU         string    `gorm:"uniqueIndex;not null"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Precio      int64  `gorm:"not null;check:precio >= 0"`
	Stock       int    `gorm:"not null;default:0;check:stock >= 0"`
	ImagenURL   string `gorm:"not null;default:''"`
	Estado      string `gorm:"type:varchar(20);not null;default:'activo';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Marca     *Marca     `gorm:"foreignKey:MarcaID"`
}

func (Producto) TableName() string { return "productos" }

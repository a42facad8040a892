package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria is a node in the two-level category tree.
// Invariant: Nivel == 1 ⟺ CategoriaPadreID == nil, and Nivel ∈ {1, 2}.
// The service layer recomputes Nivel on every create/update.
type Categoria struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string     `gorm:"not null"`
	Descripcion     *string
	CategoriaPadreID *uuid.UUID `gorm:"type:uuid;index"`
	Nivel           int        `gorm:"not null;default:1;check:nivel IN (1,2)"`
	Activa          bool       `gorm:"not null;default:true;index"`
	Slug            string     `gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	CategoriaPadre *Categoria `gorm:"foreignKey:CategoriaPadreID"`
}

func (Categoria) TableName() string { return "categorias" }

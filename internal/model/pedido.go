package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido and PedidoItem are passive records: the schema carries them and the
// dashboard counts them, but no storefront flow creates or mutates them yet.
type Pedido struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID  *uuid.UUID `gorm:"type:uuid;index"`
	Calle      string
	Ciudad     string
	Region     string
	Estado     string `gorm:"type:varchar(30);not null;default:'Pendiente de pago';index"`
	Total      int64  `gorm:"not null;check:total >= 0"`
	Notas      *string
	TrackingCodigo *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente *ClientePersona `gorm:"foreignKey:ClienteID"`
	Items   []PedidoItem    `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

type PedidoItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad   int       `gorm:"not null;check:cantidad > 0"`
	// PrecioUnitario is the price honored when the pedido was placed.
	PrecioUnitario int64 `gorm:"not null;check:precio_unitario >= 0"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (PedidoItem) TableName() string { return "pedido_items" }

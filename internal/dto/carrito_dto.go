package dto

import "petmarket/internal/carrito"

type AgregarCarritoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"`
}

type EliminarCarritoRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
}

type ActualizarCarritoRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Cantidad   int    `json:"cantidad"`
}

// CarritoOperacionResponse is returned by every cart mutation.
type CarritoOperacionResponse struct {
	Success        bool   `json:"success"`
	NombreProducto string `json:"nombre_producto,omitempty"`
	TotalProductos int    `json:"total_productos"`
	Subtotal       int64  `json:"subtotal"`
	Total          int64  `json:"total"`
}

// CarritoResponse backs the cart page.
type CarritoResponse struct {
	Items          []carrito.Item `json:"items"`
	TotalProductos int            `json:"total_productos"`
	Subtotal       int64          `json:"subtotal"`
	CostoEnvio     int64          `json:"costo_envio"`
	Total          int64          `json:"total"`
	Vacio          bool           `json:"vacio"`
}

package service

import (
	"context"
	"errors"

	"petmarket/internal/apierror"
	"petmarket/internal/carrito"
	"petmarket/internal/config"
	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarritoService exposes the session cart operations. Every method loads the
// cart for the session, applies one mutation and persists; the totals in the
// response are computed from session prices, never live catalog reads.
type CarritoService interface {
	Ver(ctx context.Context, sessionID string) (*dto.CarritoResponse, error)
	Agregar(ctx context.Context, sessionID string, req dto.AgregarCarritoRequest) (*dto.CarritoOperacionResponse, error)
	Eliminar(ctx context.Context, sessionID string, req dto.EliminarCarritoRequest) (*dto.CarritoOperacionResponse, error)
	Actualizar(ctx context.Context, sessionID string, req dto.ActualizarCarritoRequest) (*dto.CarritoOperacionResponse, error)
	Limpiar(ctx context.Context, sessionID string) (*dto.CarritoOperacionResponse, error)
}

type carritoService struct {
	store      *carrito.Store
	productos  repository.ProductoRepository
	almacen    Almacen
	costoEnvio int64
}

func NewCarritoService(store *carrito.Store, productos repository.ProductoRepository, almacen Almacen, cfg *config.Config) CarritoService {
	costo := cfg.CostoEnvio
	if costo <= 0 {
		costo = carrito.CostoEnvioDefault
	}
	return &carritoService{store: store, productos: productos, almacen: almacen, costoEnvio: costo}
}

func (s *carritoService) operacion(c *carrito.Carrito, nombre string) *dto.CarritoOperacionResponse {
	return &dto.CarritoOperacionResponse{
		Success:        true,
		NombreProducto: nombre,
		TotalProductos: c.TotalProductos(),
		Subtotal:       c.Subtotal(),
		Total:          c.Total(s.costoEnvio),
	}
}

func (s *carritoService) Ver(ctx context.Context, sessionID string) (*dto.CarritoResponse, error) {
	c, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(c.IDs()))
	for _, raw := range c.IDs() {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	productos, err := s.productos.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := c.Items(productos)
	for i := range items {
		items[i].ImagenURL = s.almacen.URLPublica(items[i].ImagenURL)
	}

	// Items may have repaired legacy entries in place.
	if c.Modificado() {
		if err := s.store.Guardar(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}

	return &dto.CarritoResponse{
		Items:          items,
		TotalProductos: c.TotalProductos(),
		Subtotal:       c.Subtotal(),
		CostoEnvio:     s.costoEnvio,
		Total:          c.Total(s.costoEnvio),
		Vacio:          c.Vacio(),
	}, nil
}

func (s *carritoService) Agregar(ctx context.Context, sessionID string, req dto.AgregarCarritoRequest) (*dto.CarritoOperacionResponse, error) {
	id, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.Validation("producto_id inválido")
	}

	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, err
	}
	if p.Estado != model.EstadoActivo {
		return nil, apierror.NotFound("producto no encontrado")
	}

	cantidad := req.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}

	c, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Agregar(p, cantidad)
	if err := s.store.Guardar(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.operacion(c, p.Nombre), nil
}

func (s *carritoService) Eliminar(ctx context.Context, sessionID string, req dto.EliminarCarritoRequest) (*dto.CarritoOperacionResponse, error) {
	c, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Eliminar(req.ProductoID)
	if err := s.store.Guardar(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.operacion(c, ""), nil
}

func (s *carritoService) Actualizar(ctx context.Context, sessionID string, req dto.ActualizarCarritoRequest) (*dto.CarritoOperacionResponse, error) {
	c, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.ActualizarCantidad(req.ProductoID, req.Cantidad)
	if err := s.store.Guardar(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.operacion(c, ""), nil
}

func (s *carritoService) Limpiar(ctx context.Context, sessionID string) (*dto.CarritoOperacionResponse, error) {
	c, err := s.store.Cargar(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Limpiar()
	if err := s.store.Guardar(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.operacion(c, ""), nil
}

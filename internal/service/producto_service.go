package service

import (
	"context"
	"errors"
	"io"

	"petmarket/internal/apierror"
	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"
	"petmarket/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Almacen is the slice of the object-storage adapter the catalog services
// need. Tests substitute a stub; production wires *storage.Spaces.
type Almacen interface {
	Subir(ctx context.Context, contenido io.Reader, tamano int64, nombreArchivo, prefijo string, nombreUnico bool) storage.Resultado
	Eliminar(ctx context.Context, path string) storage.ResultadoEliminacion
	URLPublica(path string) string
}

// ColaLimpieza schedules the removal of an orphaned stored object for a
// later retry when the synchronous delete failed.
type ColaLimpieza interface {
	EncolarLimpieza(ctx context.Context, path string) error
}

// ImagenSubida carries an uploaded file from the handler into the service.
type ImagenSubida struct {
	Contenido io.Reader
	Tamano    int64
	Nombre    string
}

// ProductoService defines the admin-side business logic for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest, imagen *ImagenSubida) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest, imagen *ImagenSubida) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
	marcas     repository.MarcaRepository
	almacen    Almacen
	limpieza   ColaLimpieza
}

func NewProductoService(
	repo repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	marcas repository.MarcaRepository,
	almacen Almacen,
	limpieza ColaLimpieza,
) ProductoService {
	return &productoService{
		repo:       repo,
		categorias: categorias,
		marcas:     marcas,
		almacen:    almacen,
		limpieza:   limpieza,
	}
}

func (s *productoService) mapProducto(p model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		CategoriaID: p.CategoriaID.String(),
		Precio:      p.Precio,
		Stock:       p.Stock,
		ImagenPath:  p.ImagenURL,
		ImagenURL:   s.almacen.URLPublica(p.ImagenURL),
		Estado:      p.Estado,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	if p.MarcaID != nil {
		id := p.MarcaID.String()
		resp.MarcaID = &id
	}
	if p.Marca != nil {
		resp.Marca = p.Marca.Nombre
	}
	return resp
}

// validarReferencias checks that the category exists and, when given, the brand.
func (s *productoService) validarReferencias(ctx context.Context, categoriaID string, marcaID *string) (uuid.UUID, *uuid.UUID, error) {
	catID, err := uuid.Parse(categoriaID)
	if err != nil {
		return uuid.Nil, nil, apierror.Validation("categoria_id inválido")
	}
	if _, err := s.categorias.ObtenerPorID(ctx, catID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, apierror.NotFound("categoría no encontrada")
		}
		return uuid.Nil, nil, err
	}

	var mID *uuid.UUID
	if marcaID != nil && *marcaID != "" {
		id, err := uuid.Parse(*marcaID)
		if err != nil {
			return uuid.Nil, nil, apierror.Validation("marca_id inválido")
		}
		if _, err := s.marcas.ObtenerPorID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, apierror.NotFound("marca no encontrada")
			}
			return uuid.Nil, nil, err
		}
		mID = &id
	}
	return catID, mID, nil
}

// eliminarImagen removes a stored image. Failures never abort the calling
// operation: the path goes to the cleanup queue and the caller collects a
// warning for the response.
func (s *productoService) eliminarImagen(ctx context.Context, path string, advertencias *[]string) {
	if path == "" {
		return
	}
	res := s.almacen.Eliminar(ctx, path)
	if res.Success {
		return
	}
	log.Warn().Str("path", path).Str("motivo", res.Message).Msg("no se pudo eliminar imagen de producto")
	if err := s.limpieza.EncolarLimpieza(ctx, path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("no se pudo encolar limpieza de imagen")
	}
	*advertencias = append(*advertencias, "No se pudo eliminar la imagen anterior: "+res.Message)
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest, imagen *ImagenSubida) (*dto.ProductoResponse, error) {
	existing, err := s.repo.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, apierror.Conflict("ya existe un producto con ese SKU")
	}

	catID, marcaID, err := s.validarReferencias(ctx, req.CategoriaID, req.MarcaID)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		CategoriaID: catID,
		MarcaID:     marcaID,
		SKU:         req.SKU,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Estado:      model.EstadoActivo,
	}

	var advertencias []string
	if imagen != nil {
		res := s.almacen.Subir(ctx, imagen.Contenido, imagen.Tamano, imagen.Nombre, storage.PrefijoProductos, false)
		if res.Success {
			p.ImagenURL = res.Path
		} else {
			advertencias = append(advertencias, "No se pudo subir la imagen: "+res.Message)
		}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// The row never landed; drop the image we just stored for it.
		if p.ImagenURL != "" {
			var descartadas []string
			s.eliminarImagen(ctx, p.ImagenURL, &descartadas)
		}
		return nil, err
	}

	creado, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := s.mapProducto(*creado)
	resp.Advertencias = advertencias
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, err
	}
	resp := s.mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Estado == "" {
		// Admin listing defaults to every state.
		filter.Estado = "all"
	}
	productos, total, page, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, s.mapProducto(p))
	}

	totalPages := int((total + repository.PageSize - 1) / repository.PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	return &dto.ProductoListResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      repository.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest, imagen *ImagenSubida) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, err
	}

	if req.SKU != p.SKU {
		existing, err := s.repo.FindBySKU(ctx, req.SKU)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && existing != nil && existing.ID != id {
			return nil, apierror.Conflict("ya existe un producto con ese SKU")
		}
	}

	catID, marcaID, err := s.validarReferencias(ctx, req.CategoriaID, req.MarcaID)
	if err != nil {
		return nil, err
	}

	p.CategoriaID = catID
	p.MarcaID = marcaID
	p.SKU = req.SKU
	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	p.Stock = req.Stock
	p.Estado = req.Estado
	p.Categoria = nil
	p.Marca = nil

	var advertencias []string
	switch {
	case imagen != nil:
		res := s.almacen.Subir(ctx, imagen.Contenido, imagen.Tamano, imagen.Nombre, storage.PrefijoProductos, false)
		if res.Success {
			if p.ImagenURL != "" && p.ImagenURL != res.Path {
				s.eliminarImagen(ctx, p.ImagenURL, &advertencias)
			}
			p.ImagenURL = res.Path
		} else {
			advertencias = append(advertencias, "No se pudo subir la imagen: "+res.Message)
		}
	case req.EliminarImagen && p.ImagenURL != "":
		s.eliminarImagen(ctx, p.ImagenURL, &advertencias)
		p.ImagenURL = ""
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.mapProducto(*actualizado)
	resp.Advertencias = advertencias
	return &resp, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("producto no encontrado")
		}
		return err
	}

	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}

	// Image cleanup is best effort; the product row is already gone.
	var advertencias []string
	s.eliminarImagen(ctx, p.ImagenURL, &advertencias)
	return nil
}

package service

import (
	"context"
	"errors"

	"petmarket/internal/apierror"
	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Counts for the storefront landing page.
const (
	inicioProductos = 8
	inicioMarcas    = 5
	maxRelacionados = 4
)

// CatalogoService serves the public storefront: landing page, filtered
// catalog listing and product detail. Only active products are visible.
type CatalogoService interface {
	Inicio(ctx context.Context) (*dto.InicioResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Detalle(ctx context.Context, id uuid.UUID) (*dto.ProductoDetalleResponse, error)
}

type catalogoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	marcas     repository.MarcaRepository
	almacen    Almacen
}

func NewCatalogoService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	marcas repository.MarcaRepository,
	almacen Almacen,
) CatalogoService {
	return &catalogoService{productos: productos, categorias: categorias, marcas: marcas, almacen: almacen}
}

func (s *catalogoService) mapProducto(p model.Producto) dto.ProductoResponse {
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

func (s *catalogoService) mapMarca(m model.Marca) dto.MarcaResponse {
	return dto.MarcaResponse{
		ID:          m.ID.String(),
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		LogoPath:    m.LogoURL,
		LogoURL:     s.almacen.URLPublica(m.LogoURL),
		SitioWeb:    m.SitioWeb,
		Slug:        m.Slug,
		Activa:      m.Activa,
	}
}

func (s *catalogoService) Inicio(ctx context.Context) (*dto.InicioResponse, error) {
	productos, err := s.productos.Destacados(ctx, inicioProductos)
	if err != nil {
		return nil, err
	}
	marcas, err := s.marcas.ListarActivas(ctx, inicioMarcas)
	if err != nil {
		return nil, err
	}

	resp := &dto.InicioResponse{
		Productos: make([]dto.ProductoResponse, 0, len(productos)),
		Marcas:    make([]dto.MarcaResponse, 0, len(marcas)),
	}
	for _, p := range productos {
		resp.Productos = append(resp.Productos, s.mapProducto(p))
	}
	for _, m := range marcas {
		resp.Marcas = append(resp.Marcas, s.mapMarca(m))
	}
	return resp, nil
}

// resolverCategoria turns a slug or case-insensitive name filter into a
// category id. An unknown reference yields ok == false: the listing then
// returns an empty page instead of an error, matching what a shopper sees
// when following a stale link.
func (s *catalogoService) resolverCategoria(ctx context.Context, filter *dto.ProductoFilter) (bool, error) {
	if filter.CategoriaID != "" || (filter.CategoriaSlug == "" && filter.CategoriaNombre == "") {
		return true, nil
	}

	var (
		c   *model.Categoria
		err error
	)
	if filter.CategoriaSlug != "" {
		c, err = s.categorias.ObtenerPorSlug(ctx, filter.CategoriaSlug)
	} else {
		c, err = s.categorias.ObtenerPorNombre(ctx, filter.CategoriaNombre)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	filter.CategoriaID = c.ID.String()
	return true, nil
}

func (s *catalogoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	// The public catalog never exposes inactive or discontinued products.
	filter.Estado = model.EstadoActivo

	ok, err := s.resolverCategoria(ctx, &filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &dto.ProductoListResponse{
			Data:       []dto.ProductoResponse{},
			Total:      0,
			Page:       1,
			Limit:      repository.PageSize,
			TotalPages: 1,
		}, nil
	}

	productos, total, page, err := s.productos.List(ctx, filter)
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

func (s *catalogoService) Detalle(ctx context.Context, id uuid.UUID) (*dto.ProductoDetalleResponse, error) {
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

	relacionados, err := s.productos.Relacionados(ctx, p.CategoriaID, p.ID, maxRelacionados)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductoDetalleResponse{
		Producto:     s.mapProducto(*p),
		Relacionados: make([]dto.ProductoResponse, 0, len(relacionados)),
	}
	for _, r := range relacionados {
		resp.Relacionados = append(resp.Relacionados, s.mapProducto(r))
	}
	return resp, nil
}

package service

import (
	"context"
	"errors"

	"petmarket/internal/apierror"
	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"
	"petmarket/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MarcaService defines business operations for brands.
type MarcaService interface {
	Crear(ctx context.Context, req dto.CrearMarcaRequest, logo *ImagenSubida) (*dto.MarcaResponse, error)
	Listar(ctx context.Context) ([]dto.MarcaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.MarcaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMarcaRequest, logo *ImagenSubida) (*dto.MarcaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type marcaService struct {
	repo      repository.MarcaRepository
	productos repository.ProductoRepository
	almacen   Almacen
	limpieza  ColaLimpieza
}

func NewMarcaService(
	repo repository.MarcaRepository,
	productos repository.ProductoRepository,
	almacen Almacen,
	limpieza ColaLimpieza,
) MarcaService {
	return &marcaService{repo: repo, productos: productos, almacen: almacen, limpieza: limpieza}
}

func (s *marcaService) mapMarca(m model.Marca) dto.MarcaResponse {
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

func (s *marcaService) eliminarLogo(ctx context.Context, path string, advertencias *[]string) {
	if path == "" {
		return
	}
	res := s.almacen.Eliminar(ctx, path)
	if res.Success {
		return
	}
	log.Warn().Str("path", path).Str("motivo", res.Message).Msg("no se pudo eliminar logo de marca")
	if err := s.limpieza.EncolarLimpieza(ctx, path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("no se pudo encolar limpieza de logo")
	}
	*advertencias = append(*advertencias, "No se pudo eliminar el logo anterior: "+res.Message)
}

func (s *marcaService) Crear(ctx context.Context, req dto.CrearMarcaRequest, logo *ImagenSubida) (*dto.MarcaResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflict("ya existe una marca con ese nombre")
	}

	slug := req.Slug
	if slug == "" {
		slug = storage.Slugify(req.Nombre, 50)
	}

	m := &model.Marca{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		SitioWeb:    req.SitioWeb,
		Slug:        slug,
		Activa:      true,
	}

	var advertencias []string
	if logo != nil {
		res := s.almacen.Subir(ctx, logo.Contenido, logo.Tamano, logo.Nombre, storage.PrefijoMarcas, false)
		if res.Success {
			m.LogoURL = res.Path
		} else {
			advertencias = append(advertencias, "No se pudo subir el logo: "+res.Message)
		}
	}

	if err := s.repo.Crear(ctx, m); err != nil {
		if m.LogoURL != "" {
			var descartadas []string
			s.eliminarLogo(ctx, m.LogoURL, &descartadas)
		}
		return nil, err
	}

	resp := s.mapMarca(*m)
	resp.Advertencias = advertencias
	return &resp, nil
}

func (s *marcaService) Listar(ctx context.Context) ([]dto.MarcaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MarcaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, s.mapMarca(m))
	}
	return result, nil
}

func (s *marcaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.MarcaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("marca no encontrada")
		}
		return nil, err
	}
	resp := s.mapMarca(*m)
	return &resp, nil
}

func (s *marcaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMarcaRequest, logo *ImagenSubida) (*dto.MarcaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("marca no encontrada")
		}
		return nil, err
	}

	if req.Nombre != m.Nombre {
		existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.Conflict("ya existe una marca con ese nombre")
		}
	}

	m.Nombre = req.Nombre
	m.Descripcion = req.Descripcion
	m.SitioWeb = req.SitioWeb
	if req.Slug != "" {
		m.Slug = req.Slug
	}
	if req.Activa != nil {
		m.Activa = *req.Activa
	}

	var advertencias []string
	switch {
	case logo != nil:
		res := s.almacen.Subir(ctx, logo.Contenido, logo.Tamano, logo.Nombre, storage.PrefijoMarcas, false)
		if res.Success {
			if m.LogoURL != "" && m.LogoURL != res.Path {
				s.eliminarLogo(ctx, m.LogoURL, &advertencias)
			}
			m.LogoURL = res.Path
		} else {
			advertencias = append(advertencias, "No se pudo subir el logo: "+res.Message)
		}
	case req.EliminarLogo && m.LogoURL != "":
		s.eliminarLogo(ctx, m.LogoURL, &advertencias)
		m.LogoURL = ""
	}

	if err := s.repo.Actualizar(ctx, m); err != nil {
		return nil, err
	}

	resp := s.mapMarca(*m)
	resp.Advertencias = advertencias
	return &resp, nil
}

func (s *marcaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("marca no encontrada")
		}
		return err
	}

	// Products keep a nullable brand reference; a brand in use cannot go away.
	enUso, err := s.productos.ContarPorMarca(ctx, id)
	if err != nil {
		return err
	}
	if enUso > 0 {
		return apierror.Conflict("la marca tiene productos asociados")
	}

	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}

	var advertencias []string
	s.eliminarLogo(ctx, m.LogoURL, &advertencias)
	return nil
}

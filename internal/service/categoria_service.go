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
	"gorm.io/gorm"
)

// CategoriaService defines business operations for the two-level category tree.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	PrevisualizarEliminacion(ctx context.Context, id uuid.UUID) (dto.CategoriaEliminacionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo      repository.CategoriaRepository
	productos repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productos repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productos: productos}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	resp := dto.CategoriaResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Nivel:       c.Nivel,
		Activa:      c.Activa,
		Slug:        c.Slug,
	}
	if c.CategoriaPadreID != nil {
		padre := c.CategoriaPadreID.String()
		resp.CategoriaPadreID = &padre
	}
	return resp
}

// resolverPadre validates the parent reference and returns the resulting
// level. Only root categories can be parents: the tree never grows past two
// levels.
func (s *categoriaService) resolverPadre(ctx context.Context, padreID *string, propio *uuid.UUID) (*uuid.UUID, int, error) {
	if padreID == nil || *padreID == "" {
		return nil, 1, nil
	}

	id, err := uuid.Parse(*padreID)
	if err != nil {
		return nil, 0, apierror.Validation("categoria_padre_id inválido")
	}
	if propio != nil && id == *propio {
		return nil, 0, apierror.Validation("una categoría no puede ser su propio padre")
	}

	padre, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apierror.NotFound("categoría padre no encontrada")
		}
		return nil, 0, err
	}
	if padre.Nivel != 1 {
		return nil, 0, apierror.Validation("la categoría padre debe ser de nivel 1")
	}
	return &id, padre.Nivel + 1, nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoriaResponse{}, err
	}
	if existing != nil {
		return dto.CategoriaResponse{}, apierror.Conflict("ya existe una categoría con ese nombre")
	}

	padreID, nivel, err := s.resolverPadre(ctx, req.CategoriaPadreID, nil)
	if err != nil {
		return dto.CategoriaResponse{}, err
	}

	slug := req.Slug
	if slug == "" {
		slug = storage.Slugify(req.Nombre, 50)
	}

	c := &model.Categoria{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		CategoriaPadreID: padreID,
		Nivel:            nivel,
		Activa:           true,
		Slug:             slug,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, apierror.NotFound("categoría no encontrada")
		}
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, apierror.NotFound("categoría no encontrada")
		}
		return dto.CategoriaResponse{}, err
	}

	if req.Nombre != nil {
		if *req.Nombre != c.Nombre {
			existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CategoriaResponse{}, err
			}
			if existing != nil && existing.ID != id {
				return dto.CategoriaResponse{}, apierror.Conflict("ya existe una categoría con ese nombre")
			}
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.CategoriaPadreID != nil {
		// Moving a category that has children would push them to level 3.
		if hijas, err := s.repo.ContarHijas(ctx, id); err != nil {
			return dto.CategoriaResponse{}, err
		} else if hijas > 0 && *req.CategoriaPadreID != "" {
			return dto.CategoriaResponse{}, apierror.Validation("la categoría tiene subcategorías y no puede convertirse en subcategoría")
		}
		padreID, nivel, err := s.resolverPadre(ctx, req.CategoriaPadreID, &id)
		if err != nil {
			return dto.CategoriaResponse{}, err
		}
		c.CategoriaPadreID = padreID
		c.Nivel = nivel
		c.CategoriaPadre = nil
	}
	if req.Slug != nil && *req.Slug != "" {
		c.Slug = *req.Slug
	}
	if req.Activa != nil {
		c.Activa = *req.Activa
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

// PrevisualizarEliminacion reports how many products and subcategories hang
// off the category, so the admin UI can warn before the cascade.
func (s *categoriaService) PrevisualizarEliminacion(ctx context.Context, id uuid.UUID) (dto.CategoriaEliminacionResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaEliminacionResponse{}, apierror.NotFound("categoría no encontrada")
		}
		return dto.CategoriaEliminacionResponse{}, err
	}

	productos, err := s.productos.ContarPorCategoria(ctx, id)
	if err != nil {
		return dto.CategoriaEliminacionResponse{}, err
	}
	hijas, err := s.repo.ContarHijas(ctx, id)
	if err != nil {
		return dto.CategoriaEliminacionResponse{}, err
	}

	return dto.CategoriaEliminacionResponse{
		Categoria:     mapCategoria(*c),
		Productos:     productos,
		Subcategorias: hijas,
	}, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("categoría no encontrada")
		}
		return err
	}

	// Deleting a category with products or subcategories is refused: the
	// admin must reassign or delete them first.
	productos, err := s.productos.ContarPorCategoria(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 {
		return apierror.Conflict("la categoría tiene productos asociados")
	}
	hijas, err := s.repo.ContarHijas(ctx, id)
	if err != nil {
		return err
	}
	if hijas > 0 {
		return apierror.Conflict("la categoría tiene subcategorías")
	}

	return s.repo.Eliminar(ctx, id)
}

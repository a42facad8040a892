package dto

type CrearCategoriaRequest struct {
	Nombre           string  `json:"nombre" validate:"required,min=2,max=50"`
	Descripcion      *string `json:"descripcion"`
	CategoriaPadreID *string `json:"categoria_padre_id" validate:"omitempty,uuid"`
	Slug             string  `json:"slug" validate:"omitempty,max=50"`
}

type ActualizarCategoriaRequest struct {
	Nombre           *string `json:"nombre" validate:"omitempty,min=2,max=50"`
	Descripcion      *string `json:"descripcion"`
	CategoriaPadreID *string `json:"categoria_padre_id" validate:"omitempty,uuid"`
	Slug             *string `json:"slug" validate:"omitempty,max=50"`
	Activa           *bool   `json:"activa"`
}

type CategoriaResponse struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Descripcion      *string `json:"descripcion"`
	CategoriaPadreID *string `json:"categoria_padre_id"`
	Nivel            int     `json:"nivel"`
	Activa           bool    `json:"activa"`
	Slug             string  `json:"slug"`
}

// CategoriaEliminacionResponse tells the admin what hangs off a category
// before confirming its deletion.
type CategoriaEliminacionResponse struct {
	Categoria     CategoriaResponse `json:"categoria"`
	Productos     int64             `json:"productos"`
	Subcategorias int64             `json:"subcategorias"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Product create/edit arrive as multipart forms (the image travels in the
// same request), so these bind with form tags rather than JSON.

type CrearProductoRequest struct {
	CategoriaID string  `form:"categoria_id" validate:"required,uuid"`
	MarcaID     *string `form:"marca_id"     validate:"omitempty,uuid"`
	SKU         string  `form:"sku"          validate:"required,min=2,max=100"`
	Nombre      string  `form:"nombre"       validate:"required,min=2,max=120"`
	Descripcion *string `form:"descripcion"`
	Precio      int64   `form:"precio"       validate:"min=0"`
	Stock       int     `form:"stock"        validate:"min=0"`
}

type ActualizarProductoRequest struct {
	CategoriaID string  `form:"categoria_id" validate:"required,uuid"`
	MarcaID     *string `form:"marca_id"     validate:"omitempty,uuid"`
	SKU         string  `form:"sku"          validate:"required,min=2,max=100"`
	Nombre      string  `form:"nombre"       validate:"required,min=2,max=120"`
	Descripcion *string `form:"descripcion"`
	Precio      int64   `form:"precio"       validate:"min=0"`
	Stock       int     `form:"stock"        validate:"min=0"`
	Estado      string  `form:"estado"       validate:"required,oneof=activo inactivo descontinuado"`
	// EliminarImagen drops the current image without uploading a new one.
	EliminarImagen bool `form:"eliminar_imagen"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter drives both the public catalog and the admin list. The
// public path forces Estado = "activo"; the admin path passes it through
// ("" = all states). Category can be referenced by id, slug, or
// case-insensitive name — the service resolves slug/nombre to an id.
type ProductoFilter struct {
	CategoriaID     string `form:"categoria"`
	CategoriaSlug   string `form:"categoria_slug"`
	CategoriaNombre string `form:"categoria_nombre"`
	MarcaID         string `form:"marca"`
	Estado          string `form:"estado"`
	Busqueda        string `form:"busqueda"`
	Page            int    `form:"page,default=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	CategoriaID string  `json:"categoria_id"`
	Categoria   string  `json:"categoria,omitempty"`
	MarcaID     *string `json:"marca_id"`
	Marca       string  `json:"marca,omitempty"`
	Precio      int64   `json:"precio"`
	Stock       int     `json:"stock"`
	ImagenPath  string  `json:"imagen_path"`
	ImagenURL   string  `json:"imagen_url"`
	Estado      string  `json:"estado"`
	// Advertencias carries non-fatal problems (image upload/delete failures)
	// from create/edit operations; the primary write already committed.
	Advertencias []string `json:"advertencias,omitempty"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type ProductoDetalleResponse struct {
	Producto     ProductoResponse   `json:"producto"`
	Relacionados []ProductoResponse `json:"relacionados"`
}

// InicioResponse backs the storefront landing page: a handful of featured
// products plus active brands.
type InicioResponse struct {
	Productos []ProductoResponse `json:"productos"`
	Marcas    []MarcaResponse    `json:"marcas"`
}

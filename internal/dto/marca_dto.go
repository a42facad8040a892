package dto

// Brand create/edit are multipart (optional logo file), hence form tags.

type CrearMarcaRequest struct {
	Nombre      string  `form:"nombre" validate:"required,min=2,max=50"`
	Descripcion *string `form:"descripcion"`
	SitioWeb    *string `form:"sitio_web" validate:"omitempty,url"`
	Slug        string  `form:"slug" validate:"omitempty,max=50"`
}

type ActualizarMarcaRequest struct {
	Nombre      string  `form:"nombre" validate:"required,min=2,max=50"`
	Descripcion *string `form:"descripcion"`
	SitioWeb    *string `form:"sitio_web" validate:"omitempty,url"`
	Slug        string  `form:"slug" validate:"omitempty,max=50"`
	Activa      *bool   `form:"activa"`
	EliminarLogo bool   `form:"eliminar_logo"`
}

type MarcaResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	LogoPath    string  `json:"logo_path"`
	LogoURL     string  `json:"logo_url"`
	SitioWeb    *string `json:"sitio_web"`
	Slug        string  `json:"slug"`
	Activa      bool    `json:"activa"`

	Advertencias []string `json:"advertencias,omitempty"`
}

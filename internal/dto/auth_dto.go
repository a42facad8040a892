package dto

type RegistroRequest struct {
	RUT             string `json:"rut" validate:"required,min=8,max=12"`
	Nombres         string `json:"nombres" validate:"required,min=2,max=50"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required,min=2,max=50"`
	ApellidoMaterno string `json:"apellido_materno" validate:"omitempty,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Telefono        string `json:"telefono" validate:"omitempty,max=15"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	Usuario     UsuarioResponse `json:"usuario"`
}

// UsuarioResponse describes the authenticated principal (customer or admin).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

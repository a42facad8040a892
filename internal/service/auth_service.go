package service

import (
	"context"
	"errors"
	"time"

	"petmarket/internal/apierror"
	"petmarket/internal/config"
	"petmarket/internal/dto"
	"petmarket/internal/model"
	"petmarket/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Bienvenidas schedules the post-registration welcome email.
type Bienvenidas interface {
	EncolarBienvenida(ctx context.Context, email, nombres string) error
}

// Roles embedded in the token: clientes shop, admins manage the catalog.
const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// AuthService covers customer registration plus the two login flows.
type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	clientes    repository.ClienteRepository
	admins      repository.UsuarioAdminRepository
	bienvenidas Bienvenidas
	cfg         *config.Config
}

func NewAuthService(
	clientes repository.ClienteRepository,
	admins repository.UsuarioAdminRepository,
	bienvenidas Bienvenidas,
	cfg *config.Config,
) AuthService {
	return &authService{clientes: clientes, admins: admins, bienvenidas: bienvenidas, cfg: cfg}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.LoginResponse, error) {
	if _, err := s.clientes.FindByRUT(ctx, req.RUT); err == nil {
		return nil, apierror.Conflict("el RUT ya está registrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.clientes.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("el email ya está registrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	cliente := &model.ClientePersona{
		RUT:             req.RUT,
		Nombres:         req.Nombres,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		Email:           req.Email,
		Telefono:        req.Telefono,
		PasswordHash:    string(hash),
		Activo:          true,
	}
	if err := s.clientes.Create(ctx, cliente); err != nil {
		return nil, err
	}

	// The welcome email is fire and forget; registration already succeeded.
	if err := s.bienvenidas.EncolarBienvenida(ctx, cliente.Email, cliente.Nombres); err != nil {
		log.Error().Err(err).Str("email", cliente.Email).Msg("no se pudo encolar email de bienvenida")
	}

	return s.respuestaLogin(cliente.ID.String(), cliente.Nombres+" "+cliente.ApellidoPaterno, cliente.Email, RolCliente)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cliente, err := s.clientes.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same message for unknown email and wrong password.
		return nil, apierror.Unauthorized("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cliente.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("credenciales inválidas")
	}
	return s.respuestaLogin(cliente.ID.String(), cliente.Nombres+" "+cliente.ApellidoPaterno, cliente.Email, RolCliente)
}

func (s *authService) LoginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Unauthorized("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("credenciales inválidas")
	}
	return s.respuestaLogin(admin.ID.String(), admin.Nombre, admin.Email, admin.Rol)
}

func (s *authService) respuestaLogin(id, nombre, email, rol string) (*dto.LoginResponse, error) {
	token, err := s.generateToken(id, email, rol)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Usuario: dto.UsuarioResponse{
			ID:     id,
			Nombre: nombre,
			Email:  email,
			Rol:    rol,
		},
	}, nil
}

func (s *authService) generateToken(id, email, rol string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"rol":     rol,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

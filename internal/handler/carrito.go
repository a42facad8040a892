package handler

import (
	"net/http"

	"petmarket/internal/dto"
	"petmarket/internal/middleware"
	"petmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// CarritoHandler serves the session-cart endpoints. The session id comes from
// the carrito_sid cookie set by the CarritoSession middleware.
type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

// Ver GET /v1/carrito
func (h *CarritoHandler) Ver(c *gin.Context) {
	resp, err := h.svc.Ver(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Agregar POST /v1/carrito/agregar
func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarCarritoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar POST /v1/carrito/eliminar
func (h *CarritoHandler) Eliminar(c *gin.Context) {
	var req dto.EliminarCarritoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar POST /v1/carrito/actualizar
func (h *CarritoHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCarritoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Limpiar POST /v1/carrito/limpiar
func (h *CarritoHandler) Limpiar(c *gin.Context) {
	resp, err := h.svc.Limpiar(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

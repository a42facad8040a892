package handler

import (
	"net/http"

	"petmarket/internal/dto"
	"petmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type MarcasHandler struct{ svc service.MarcaService }

func NewMarcasHandler(svc service.MarcaService) *MarcasHandler {
	return &MarcasHandler{svc: svc}
}

// Listar GET /v1/marcas
func (h *MarcasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/admin/marcas/:id
func (h *MarcasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/admin/marcas (multipart)
func (h *MarcasHandler) Crear(c *gin.Context) {
	var req dto.CrearMarcaRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	logo, ok := imagenDesdeForm(c, "logo_file")
	if !ok {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/admin/marcas/:id (multipart)
func (h *MarcasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMarcaRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	logo, ok := imagenDesdeForm(c, "logo_file")
	if !ok {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/admin/marcas/:id
func (h *MarcasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

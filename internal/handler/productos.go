package handler

import (
	"net/http"

	"petmarket/internal/apierror"
	"petmarket/internal/dto"
	"petmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// Image uploads larger than this are refused outright.
const maxImagenBytes = 10 << 20 // 10 MiB

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// imagenDesdeForm extracts the optional "imagen_file" part of a multipart
// request. A missing file is not an error; an oversized one is.
func imagenDesdeForm(c *gin.Context, field string) (*service.ImagenSubida, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, true // sin archivo
	}
	if fh.Size > maxImagenBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("La imagen supera el tamaño máximo permitido"))
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer la imagen adjunta"))
		return nil, false
	}
	// Gin cierra el multipart al terminar el request.
	return &service.ImagenSubida{Contenido: f, Tamano: fh.Size, Nombre: fh.Filename}, true
}

// Listar GET /v1/admin/productos
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtros inválidos: "+err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/admin/productos/:id
func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/admin/productos (multipart)
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	imagen, ok := imagenDesdeForm(c, "imagen_file")
	if !ok {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, imagen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/admin/productos/:id (multipart)
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	imagen, ok := imagenDesdeForm(c, "imagen_file")
	if !ok {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, imagen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/admin/productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
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

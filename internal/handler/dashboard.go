package handler

import (
	"net/http"
	"time"

	"petmarket/internal/apierror"
	"petmarket/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen GET /v1/admin/dashboard
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarCatalogoPDF GET /v1/admin/catalogo/pdf
func (h *DashboardHandler) ExportarCatalogoPDF(c *gin.Context) {
	nombre := "catalogo-" + time.Now().Format("20060102") + ".pdf"
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)

	if err := h.svc.ExportarCatalogoPDF(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log and fall back to a JSON error
		// only when nothing was written yet.
		c.Error(err)
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el catálogo"))
		}
	}
}

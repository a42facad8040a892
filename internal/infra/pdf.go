package infra

// pdf.go — catalog export using go-pdf/fpdf. Produces an A4 listing of the
// product catalog (SKU, name, category, price, stock, estado) for the admin
// dashboard's "exportar" action.

import (
	"fmt"
	"io"
	"time"

	"petmarket/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCatalogoPDF writes a catalog listing to w.
func GenerateCatalogoPDF(productos []model.Producto, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "PetMarket", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Listado de productos", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Column layout ─────────────────────────────────────────────────────────
	colSKU := contentW * 0.16
	colNombre := contentW * 0.34
	colCategoria := contentW * 0.20
	colPrecio := contentW * 0.12
	colStock := contentW * 0.08
	colEstado := contentW * 0.10

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(colSKU, 6, "SKU", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colNombre, 6, "Producto", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colCategoria, 6, "Categoría", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colPrecio, 6, "Precio", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colStock, 6, "Stock", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colEstado, 6, "Estado", "B", 1, "L", false, 0, "")
	}
	header()

	truncate := func(s string, max int) string {
		r := []rune(s)
		if len(r) > max {
			return string(r[:max-1]) + "…"
		}
		return s
	}

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range productos {
		_, pageH := pdf.GetPageSize()
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 8)
		}

		categoria := ""
		if p.Categoria != nil {
			categoria = p.Categoria.Nombre
		}
		pdf.CellFormat(colSKU, 5, truncate(p.SKU, 16), "", 0, "L", false, 0, "")
		pdf.CellFormat(colNombre, 5, truncate(p.Nombre, 34), "", 0, "L", false, 0, "")
		pdf.CellFormat(colCategoria, 5, truncate(categoria, 20), "", 0, "L", false, 0, "")
		pdf.CellFormat(colPrecio, 5, fmt.Sprintf("$%d", p.Precio), "", 0, "R", false, 0, "")
		pdf.CellFormat(colStock, 5, fmt.Sprintf("%d", p.Stock), "", 0, "R", false, 0, "")
		pdf.CellFormat(colEstado, 5, p.Estado, "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Total: %d productos", len(productos)), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// Package pdf implementa el renderer del reporte completo de la
// flota: plantilla HTML con gráficos Chart.js convertida a PDF vía
// wkhtmltopdf.
//
// Estructura del documento A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  PORTADA: logo/empresa, período, datos de contacto          │
//	│  ── salto de página ──                                      │
//	│  SUMÁRIO: índice de secciones                               │
//	│  ── salto de página ──                                      │
//	│  RESUMEN: tarjetas financieras + KPIs de flota              │
//	│  DESTACADOS + volumen de registros                          │
//	│  GRÁFICOS: torta por categoría / barras / evolución diaria  │
//	│  ── salto de página ──                                      │
//	│  TABLAS: análisis por vehículo y funcionario + rankings     │
//	│  ANEXOS: cada histórico arranca en página nueva             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/scala-gestao/frota-api/internal/application/report"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

// javascriptDelayMS espera tras cargar la página para que Chart.js
// termine de pintar los canvas antes de imprimir.
const javascriptDelayMS = 1200

var _ report.Renderer = (*WKHTMLRenderer)(nil)

// WKHTMLRenderer implementa report.Renderer con el binario wkhtmltopdf.
// Cada Render crea su propio generador: el proceso externo no se
// comparte entre peticiones. El logo se lee del disco una sola vez.
type WKHTMLRenderer struct {
	logo logoLoader
}

// NewWKHTMLRenderer construye el renderer. logoPath puede apuntar a un
// archivo inexistente; el documento sale sin logo.
func NewWKHTMLRenderer(logoPath string) *WKHTMLRenderer {
	return &WKHTMLRenderer{logo: logoLoader{path: logoPath}}
}

// Render ejecuta la plantilla con el reporte ya formateado y convierte
// el HTML resultante a PDF. Cualquier fallo aborta el documento
// completo; nunca se entrega un PDF parcial.
func (r *WKHTMLRenderer) Render(ctx context.Context, data *report.Data) ([]byte, error) {
	var html bytes.Buffer
	if err := reportTemplate.Execute(&html, buildView(data, r.logo.dataURI())); err != nil {
		return nil, fmt.Errorf("ejecutar plantilla: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("crear generador pdf: %w", err)
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(12)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	page.JavascriptDelay.Set(javascriptDelayMS)
	page.FooterFontSize.Set(7)
	page.FooterRight.Set("Página [page] de [topage]")
	pdfg.AddPage(page)

	// CreateContext respeta el deadline de la petición: un cliente que
	// cancela no deja procesos wkhtmltopdf colgados.
	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}
	return pdfg.Buffer().Bytes(), nil
}

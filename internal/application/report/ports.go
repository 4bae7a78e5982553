package report

import "context"

// Renderer convierte el reporte ensamblado en un documento PDF.
//
// El render es un trabajo de impresión de una sola pasada: el renderer
// no busca datos y debe fallar ruidosamente (propagar el error) antes
// que entregar un documento parcial.
type Renderer interface {
	Render(ctx context.Context, data *Data) ([]byte, error)
}

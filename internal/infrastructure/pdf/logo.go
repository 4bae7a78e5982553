package pdf

import (
	"encoding/base64"
	"os"
	"sync"
)

// logoLoader carga el logo de la empresa una sola vez por proceso y lo
// expone como data URI para la portada y la marca de agua. Si el
// archivo no existe o no se puede leer, el URI queda vacío y el
// documento sale sin logo; no se reintenta en renders posteriores.
type logoLoader struct {
	path string
	once sync.Once
	uri  string
}

func (l *logoLoader) dataURI() string {
	l.once.Do(func() {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return
		}
		l.uri = "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	})
	return l.uri
}

// Package archive empaqueta los documentos de un contrato en un zip.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
)

var _ usecase.DocumentArchiver = (*Zip)(nil)

// Zip implementa usecase.DocumentArchiver con klauspost/compress.
type Zip struct {
	level int
	now   func() time.Time
}

// NewZip crea el empaquetador con compresión por defecto.
func NewZip() *Zip {
	return &Zip{level: flate.DefaultCompression, now: time.Now}
}

// Bundle escribe cada entrada en el zip en el orden recibido. Los nombres
// repetidos reciben sufijo numérico; un Open que falla aborta el paquete.
func (z *Zip) Bundle(ctx context.Context, entries []usecase.ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, z.level)
	})

	seen := make(map[string]int, len(entries))
	modified := z.now()
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := uniqueName(seen, e.Name)
		if err := z.writeEntry(w, name, modified, e); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("archive: cerrar zip: %w", err)
	}
	return buf.Bytes(), nil
}

func (z *Zip) writeEntry(w *zip.Writer, name string, modified time.Time, e usecase.ArchiveEntry) error {
	src, err := e.Open()
	if err != nil {
		return fmt.Errorf("archive: abrir %s: %w", e.Name, err)
	}
	defer src.Close()

	dst, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
	if err != nil {
		return fmt.Errorf("archive: crear %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("archive: escribir %s: %w", name, err)
	}
	return nil
}

// uniqueName agrega "-2", "-3"... antes de la extensión si el nombre ya existe.
func uniqueName(seen map[string]int, name string) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	return fmt.Sprintf("%s-%d%s", name[:len(name)-len(ext)], n, ext)
}

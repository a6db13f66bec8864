// Package archive empaqueta exportaciones en ZIP en memoria.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

var _ ports.Archiver = (*ZipBuilder)(nil)

// ZipBuilder implementa ports.Archiver.
// Now fija la fecha de las entradas; nil usa time.Now.
type ZipBuilder struct {
	Now func() time.Time
}

// NewZipBuilder construye el empaquetador.
func NewZipBuilder() *ZipBuilder { return &ZipBuilder{} }

// Zip escribe las entradas en el orden recibido. Un nombre vacío o repetido es error.
func (b *ZipBuilder) Zip(entries []ports.ArchiveEntry) ([]byte, error) {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	modified := now()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("zip: entrada sin nombre")
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("zip: entrada duplicada %s", e.Name)
		}
		seen[e.Name] = struct{}{}

		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return nil, fmt.Errorf("zip: crear entrada %s: %w", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			return nil, fmt.Errorf("zip: escribir %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

package ports

import "github.com/jhoicas/parser-config-api/internal/application/dto"

// ParserPDFGenerator genera la ficha técnica de un parser en PDF.
type ParserPDFGenerator interface {
	Generate(doc *dto.ParserDetailResponse) ([]byte, error)
}

// ParserXMLExporter serializa la definición de un parser a XML y devuelve además
// el digest (hex) de su forma canónica.
type ParserXMLExporter interface {
	Export(doc *dto.ParserDetailResponse) (xml []byte, digest string, err error)
}

// ArchiveEntry archivo dentro de un paquete comprimido.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// Archiver empaqueta varios archivos en un único ZIP en memoria.
type Archiver interface {
	Zip(entries []ArchiveEntry) ([]byte, error)
}

package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ExportUseCase exporta la definición de un parser a XML (con digest canónico), a PDF
// o a un ZIP con ambos.
type ExportUseCase struct {
	parsers ParserReader
	xml     ports.ParserXMLExporter
	pdf     ports.ParserPDFGenerator
	zip     ports.Archiver
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(parsers ParserReader, xml ports.ParserXMLExporter, pdf ports.ParserPDFGenerator, zip ports.Archiver) *ExportUseCase {
	return &ExportUseCase{parsers: parsers, xml: xml, pdf: pdf, zip: zip}
}

// XML devuelve el documento y su digest SHA-256 (hex) sobre la forma canónica.
func (uc *ExportUseCase) XML(ctx context.Context, orgID string, parserID int64) ([]byte, string, error) {
	def, err := uc.parsers.Get(ctx, orgID, parserID)
	if err != nil {
		return nil, "", err
	}
	data, digest, err := uc.xml.Export(def)
	if err != nil {
		return nil, "", fmt.Errorf("exportar xml parser %d: %w", parserID, err)
	}
	return data, digest, nil
}

// PDF devuelve la ficha técnica y un nombre de archivo sugerido.
func (uc *ExportUseCase) PDF(ctx context.Context, orgID string, parserID int64) ([]byte, string, error) {
	def, err := uc.parsers.Get(ctx, orgID, parserID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.Generate(def)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf parser %d: %w", parserID, err)
	}
	return data, baseName(def) + ".pdf", nil
}

// Bundle arma un ZIP con el XML, su digest y la ficha PDF. Devuelve los bytes y el nombre
// sugerido.
func (uc *ExportUseCase) Bundle(ctx context.Context, orgID string, parserID int64) ([]byte, string, error) {
	def, err := uc.parsers.Get(ctx, orgID, parserID)
	if err != nil {
		return nil, "", err
	}
	xmlData, digest, err := uc.xml.Export(def)
	if err != nil {
		return nil, "", fmt.Errorf("exportar xml parser %d: %w", parserID, err)
	}
	pdfData, err := uc.pdf.Generate(def)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf parser %d: %w", parserID, err)
	}
	base := baseName(def)
	data, err := uc.zip.Zip([]ports.ArchiveEntry{
		{Name: base + ".xml", Data: xmlData},
		{Name: base + ".xml.sha256", Data: []byte(digest + "  " + base + ".xml\n")},
		{Name: base + ".pdf", Data: pdfData},
	})
	if err != nil {
		return nil, "", fmt.Errorf("empaquetar parser %d: %w", parserID, err)
	}
	return data, base + ".zip", nil
}

// baseName nombre de archivo seguro: "Nombre_Del_Parser-<id>".
func baseName(def *dto.ParserDetailResponse) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(def.Name, "_"), "_")
	if name == "" {
		name = "parser"
	}
	return fmt.Sprintf("%s-%d", name, def.ID)
}

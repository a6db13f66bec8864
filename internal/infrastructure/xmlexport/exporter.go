// Package xmlexport serializa la definición de un parser a XML y calcula el digest de su
// forma canónica (C14N), que sirve como ETag estable entre exportaciones.
package xmlexport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

// Namespace del documento exportado.
const Namespace = "urn:parser-config:definition:1"

var _ ports.ParserXMLExporter = (*Exporter)(nil)

// Exporter implementa ports.ParserXMLExporter con etree.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export devuelve el XML indentado y el SHA-256 (hex) de su forma canónica.
// La contraseña del destino nunca se exporta.
func (e *Exporter) Export(doc *dto.ParserDetailResponse) ([]byte, string, error) {
	if doc == nil {
		return nil, "", fmt.Errorf("xmlexport: parser nil")
	}
	d := build(doc)
	d.Indent(2)
	out, err := d.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xmlexport: serializar: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest canonicaliza data y devuelve su SHA-256 en hex. Dos documentos que solo difieren
// en espacios entre atributos, orden de atributos o forma de los elementos vacíos dan el mismo digest.
func Digest(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

func build(doc *dto.ParserDetailResponse) *etree.Document {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement("parser")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", strconv.FormatInt(doc.ID, 10))
	root.CreateAttr("name", doc.Name)
	root.CreateAttr("type", doc.ParserType)
	root.CreateAttr("status", doc.Status)
	if doc.OrgID != "" {
		root.CreateAttr("org", doc.OrgID)
	}
	if !doc.UpdatedAt.IsZero() {
		root.CreateAttr("updated", doc.UpdatedAt.UTC().Format(time.RFC3339))
	}

	c := doc.Config
	target := root.CreateElement("target")
	target.CreateAttr("sql", c.SQL)
	target.CreateAttr("database", c.Database)
	target.CreateAttr("user", c.UserName)
	target.CreateAttr("showQuery", strconv.FormatBool(c.ShowQuery))
	target.CreateElement("url").SetText(c.SQLURL)
	target.CreateElement("table").SetText(c.Table)
	target.CreateElement("fileNameColumn").SetText(c.FileNameColumn)
	target.CreateElement("promptTable").SetText(c.LLMPromptDatabaseTable)

	prompts := root.CreateElement("prompts")
	prompts.CreateAttr("count", strconv.Itoa(len(doc.Prompts)))
	for _, p := range doc.Prompts {
		el := prompts.CreateElement("prompt")
		el.CreateAttr("column", p.DBColumn)
		el.CreateAttr("type", p.ColumnType)
		el.SetText(p.Prompt)
	}

	if t := doc.Template; t != nil {
		tpl := root.CreateElement("template")
		tpl.CreateAttr("name", t.TemplateName)
		tpl.CreateElement("match").SetText(t.MatchingText)
		if t.TemplatePrompt != nil {
			tpl.CreateElement("instructions").SetText(*t.TemplatePrompt)
		}
	}
	return d
}

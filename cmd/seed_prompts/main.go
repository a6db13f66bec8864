// seed_prompts genera una migración SQL idempotente con el catálogo de prompts de
// automatización de navegador a partir de un XML (UTF-8, ISO-8859-1 o Windows-1252).
//
// Uso: go run ./cmd/seed_prompts [ruta/prompts.xml]
// Por defecto busca browser_prompts.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/003_seed_browser_prompts.sql
//
// Formato esperado:
//
//	<prompts>
//	  <prompt name="login" active="true">
//	    <description>Inicia sesión</description>
//	    <text>Abre la página y ...</text>
//	  </prompt>
//	</prompts>
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalog struct {
	Prompts []promptXML `xml:"prompt"`
}

type promptXML struct {
	Name        string `xml:"name,attr"`
	Active      string `xml:"active,attr"`
	Description string `xml:"description"`
	Text        string `xml:"text"`
}

type seedPrompt struct {
	name, description, text string
	active                  bool
}

func main() {
	xmlPath := "browser_prompts.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "003_seed_browser_prompts.sql")

	n, err := generate(xmlPath, outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d prompts\n", outPath, n)
}

// generate convierte xmlPath en outPath. Escribe primero un temporal en el mismo directorio
// y lo renombra al final: si algo falla, outPath queda como estaba.
func generate(xmlPath, outPath string) (int, error) {
	f, err := os.Open(xmlPath)
	if err != nil {
		return 0, fmt.Errorf("abrir XML: %w", err)
	}
	defer f.Close()

	prompts, err := decodeCatalog(f)
	if err != nil {
		return 0, fmt.Errorf("decodificar XML: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".seed-*.sql")
	if err != nil {
		return 0, fmt.Errorf("crear archivo: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeSQL(tmp, prompts); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("escribir SQL: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("cerrar archivo: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return 0, fmt.Errorf("mover a %s: %w", outPath, err)
	}
	return len(prompts), nil
}

// decodeCatalog lee el XML, descarta entradas sin nombre o sin texto y, si un nombre
// se repite, se queda con la última. El resultado sale ordenado por nombre.
func decodeCatalog(r io.Reader) ([]seedPrompt, error) {
	var c catalog
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		case "US-ASCII", "ASCII":
			return input, nil
		}
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}

	byName := make(map[string]seedPrompt, len(c.Prompts))
	for _, p := range c.Prompts {
		name := strings.TrimSpace(p.Name)
		text := strings.TrimSpace(p.Text)
		if name == "" || text == "" {
			continue
		}
		active := true
		if p.Active != "" {
			if v, err := strconv.ParseBool(p.Active); err == nil {
				active = v
			}
		}
		byName[name] = seedPrompt{
			name:        name,
			description: strings.TrimSpace(p.Description),
			text:        text,
			active:      active,
		}
	}

	out := make([]seedPrompt, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

func writeSQL(w io.Writer, prompts []seedPrompt) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de prompts de automatización de navegador\n")
	b.WriteString("-- Generado por cmd/seed_prompts\n\n")
	if len(prompts) == 0 {
		b.WriteString("SELECT 1;\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO browser_automation_prompt (name, prompt, description, is_active) VALUES\n")
	for i, p := range prompts {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %t)", escapeSQL(p.name), escapeSQL(p.text), escapeSQL(p.description), p.active)
		if i < len(prompts)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (name) DO UPDATE SET\n")
	b.WriteString("  prompt = EXCLUDED.prompt,\n")
	b.WriteString("  description = EXCLUDED.description,\n")
	b.WriteString("  is_active = EXCLUDED.is_active,\n")
	b.WriteString("  date_updated = NOW();\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

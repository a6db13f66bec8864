// Package pdf genera la ficha técnica de un parser LLM.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del parser + ID │ Estado + fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINO: base, tabla, columna de archivo     │  QR          │
//	│  TEMPLATE: nombre + texto característico                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Columna | Tipo | Prompt                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/internal/application/ports"
)

var _ ports.ParserPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ParserPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate arma la ficha del parser y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) Generate(doc *dto.ParserDetailResponse) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: parser nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de parser "+doc.Name, true).
		WithAuthor("parser-config-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(targetRow(doc))
	m.AddRows(templateRow(doc.Template))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(promptHeaderRow())
	m.AddRows(promptRows(doc.Prompts)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc *dto.ParserDetailResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Parser #%d   |   %s   |   Org: %s", doc.ID, doc.ParserType, nonEmpty(doc.OrgID, "-")), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("FICHA DE PARSER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Status, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Actualizado: "+doc.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// targetRow: destino de los datos extraídos y un QR con la URL de conexión.
func targetRow(doc *dto.ParserDetailResponse) core.Row {
	c := doc.Config
	info := col.New(9).Add(
		text.New("DESTINO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("Motor: %s   |   Base: %s   |   Usuario: %s",
			nonEmpty(c.SQL, "-"), nonEmpty(c.Database, "-"), nonEmpty(c.UserName, "-"),
		), props.Text{Size: 8, Top: 7, Color: colorGray}),
		text.New(fmt.Sprintf("Tabla: %s   |   Columna de archivo: %s   |   Prompts en: %s",
			nonEmpty(c.Table, "-"), nonEmpty(c.FileNameColumn, "-"), nonEmpty(c.LLMPromptDatabaseTable, "-"),
		), props.Text{Size: 8, Top: 13, Color: colorGray}),
		text.New(nonEmpty(c.SQLURL, ""), props.Text{Size: 7, Top: 19, Color: colorGray}),
	)
	if c.SQLURL == "" {
		return row.New(26).Add(info, col.New(3))
	}
	return row.New(26).Add(info, col.New(3).Add(code.NewQr(c.SQLURL, props.Rect{Percent: 90, Center: true})))
}

func templateRow(t *dto.TemplateResponse) core.Row {
	if t == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("Sin template asociado.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		))
	}
	prompt := "-"
	if t.TemplatePrompt != nil && *t.TemplatePrompt != "" {
		prompt = *t.TemplatePrompt
	}
	return row.New(20).Add(col.New(12).Add(
		text.New("TEMPLATE: "+t.TemplateName, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New("Texto característico: "+t.MatchingText, props.Text{Size: 8, Top: 7}),
		text.New("Instrucciones: "+prompt, props.Text{Size: 8, Top: 13, Color: colorGray}),
	))
}

func promptHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Columna", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Prompt", 6, align.Left),
	)
}

// promptRows: una fila por prompt, con franjas alternas.
func promptRows(prompts []dto.PromptResponse) []core.Row {
	if len(prompts) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("El parser no tiene prompts definidos.", props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Center}),
		))}
	}
	out := make([]core.Row, 0, len(prompts))
	for i, p := range prompts {
		r := row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(p.DBColumn, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.ColumnType, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(p.Prompt, props.Text{Size: 8, Top: 1, Left: 1, Right: 1})),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, r)
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

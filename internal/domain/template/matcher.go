// Package template decide qué template (y por tanto qué parser) corresponde a un documento.
package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/parser-config-api/internal/domain/entity"
)

// Normalize lleva s a forma NFKC, pliega mayúsculas y colapsa espacios, de modo que
// "ＡＣＭＥ  Corp" y "acme corp" comparen igual.
func Normalize(s string) string {
	// Un Caser guarda estado: no se comparte entre goroutines.
	s = cases.Fold().String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(s), " ")
}

// Matches informa si matchingText aparece dentro de text tras normalizar ambos.
func Matches(text, matchingText string) bool {
	needle := Normalize(matchingText)
	if needle == "" {
		return false
	}
	return strings.Contains(Normalize(text), needle)
}

// Best devuelve el template cuyo texto característico aparece en text. Si varios
// coinciden gana el texto más largo (más específico) y, a igualdad, el de menor ID.
func Best(text string, templates []*entity.Template) *entity.Template {
	haystack := Normalize(text)
	var best *entity.Template
	bestLen := 0
	for _, t := range templates {
		needle := Normalize(t.MatchingText)
		if needle == "" || !strings.Contains(haystack, needle) {
			continue
		}
		l := len(needle)
		if best == nil || l > bestLen || (l == bestLen && t.ID < best.ID) {
			best, bestLen = t, l
		}
	}
	return best
}

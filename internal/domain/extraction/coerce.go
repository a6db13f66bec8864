// Package extraction convierte las respuestas en texto libre del LLM al tipo de la
// columna destino declarado en cada prompt (column_type).
package extraction

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind familia de tipos de columna soportada.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindDecimal
	KindBoolean
	KindDate
	KindDateTime
)

var kindByName = map[string]Kind{
	"string":    KindString,
	"text":      KindString,
	"varchar":   KindString,
	"int":       KindInteger,
	"integer":   KindInteger,
	"bigint":    KindInteger,
	"decimal":   KindDecimal,
	"numeric":   KindDecimal,
	"float":     KindDecimal,
	"double":    KindDecimal,
	"boolean":   KindBoolean,
	"bool":      KindBoolean,
	"date":      KindDate,
	"datetime":  KindDateTime,
	"timestamp": KindDateTime,
}

// ParseKind interpreta un column_type (sin distinguir mayúsculas).
func ParseKind(columnType string) (Kind, error) {
	k, ok := kindByName[strings.ToLower(strings.TrimSpace(columnType))]
	if !ok {
		return KindString, fmt.Errorf("column_type desconocido %q", columnType)
	}
	return k, nil
}

// ValidColumnType informa si columnType es uno de los tipos admitidos.
func ValidColumnType(columnType string) bool {
	_, err := ParseKind(columnType)
	return err == nil
}

// El orden importa: ISO primero y luego día/mes antes que mes/día.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC3339,
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
}

// Coerce convierte raw al tipo kind. Respuestas vacías o "null"/"n/a" devuelven nil sin error.
func Coerce(kind Kind, raw string) (any, error) {
	s := cleanAnswer(raw)
	if s == "" {
		return nil, nil
	}
	switch kind {
	case KindInteger:
		return coerceInteger(s)
	case KindDecimal:
		return coerceDecimal(s)
	case KindBoolean:
		return coerceBoolean(s)
	case KindDate:
		t, err := parseWithLayouts(s, dateLayouts)
		if err != nil {
			return nil, err
		}
		return t.Format("2006-01-02"), nil
	case KindDateTime:
		t, err := parseWithLayouts(s, dateTimeLayouts)
		if err != nil {
			return nil, err
		}
		return t.UTC().Format(time.RFC3339), nil
	default:
		return s, nil
	}
}

func cleanAnswer(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'`")
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "null", "none", "n/a", "na", "-":
		return ""
	}
	return s
}

func numericPart(s string) string {
	r := strings.NewReplacer(",", "", " ", "", "$", "", "€", "", "£", "", "%", "")
	return r.Replace(s)
}

func coerceInteger(s string) (any, error) {
	n := numericPart(s)
	if v, err := strconv.ParseInt(n, 10, 64); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(n)
	if err != nil || !d.Equal(d.Truncate(0)) {
		return nil, fmt.Errorf("%q no es un entero", s)
	}
	return d.IntPart(), nil
}

func coerceDecimal(s string) (any, error) {
	d, err := decimal.NewFromString(numericPart(s))
	if err != nil {
		return nil, fmt.Errorf("%q no es un número", s)
	}
	return d, nil
}

func coerceBoolean(s string) (any, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1", "si", "sí":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return nil, fmt.Errorf("%q no es un booleano", s)
}

func parseWithLayouts(s string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q no es una fecha reconocida", s)
}

package viewmodel

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold normaliza texto para búsquedas: minúsculas y sin tildes ("Cámara" == "camara").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// matches indica si alguno de los campos contiene query, sin distinguir tildes ni mayúsculas.
// Una consulta vacía coincide con todo.
func matches(query string, fields ...string) bool {
	q := fold(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}

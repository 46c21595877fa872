// Package tenantid contiene las funciones puras de normalización y validación
// del identificador de tenant que aparece en rutas /t/{tenantId}/...
package tenantid

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen largo máximo permitido para un tenantId.
const MaxLen = 50

// foldMarks descompone a NFD y elimina marcas combinantes, de modo que
// "Peluquería" normaliza a "peluqueria" en vez de perder la vocal acentuada.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize pasa a minúsculas, pliega diacríticos y descarta todo carácter
// fuera de [a-z0-9-]. No garantiza que el resultado sea válido (puede quedar
// vacío o con guiones en los extremos); eso lo decide Validate.
func Normalize(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	if folded, _, err := transform.String(foldMarks, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Result resultado de Validate: válido o un motivo legible para el usuario.
type Result struct {
	Valid  bool
	Reason string
}

func invalid(reason string) Result { return Result{Valid: false, Reason: reason} }

// Validate verifica que el tenantId sea utilizable como identificador de ruta.
// El motivo de rechazo es un string legible, nunca un booleano pelado.
func Validate(id string) Result {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return invalid("el tenantId es requerido")
	}
	normalized := Normalize(id)
	if normalized == "" {
		return invalid("el tenantId debe contener al menos un carácter válido (a-z, 0-9, -)")
	}
	if normalized != strings.ToLower(trimmed) {
		return invalid("el tenantId solo puede contener letras minúsculas, números y guiones")
	}
	if strings.HasPrefix(normalized, "-") || strings.HasSuffix(normalized, "-") {
		return invalid("el tenantId no puede empezar ni terminar con guión")
	}
	if len(normalized) > MaxLen {
		return invalid("el tenantId no puede tener más de 50 caracteres")
	}
	return Result{Valid: true}
}

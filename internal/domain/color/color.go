// Package color implementa la aritmética de colores del theming por tenant:
// aclarar/oscurecer/mezclar y el contraste WCAG para elegir color de texto.
// Todas las funciones son puras sobre tripletas (r,g,b) en [0,255].
package color

import (
	"fmt"
	"math"
	"strings"
)

// RGB tripleta de canales en [0, 255].
type RGB struct {
	R, G, B float64
}

// ParseHex interpreta "#rrggbb" (el '#' es opcional).
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color hex inválido: %q", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("color hex inválido: %q", hex)
	}
	return RGB{R: float64(r), G: float64(g), B: float64(b)}, nil
}

// Hex devuelve el color como "#rrggbb".
func (c RGB) Hex() string {
	clamp := func(v float64) int {
		n := int(math.Round(v))
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// Lighten acerca cada canal al blanco en proporción amount (0-1).
func Lighten(c RGB, amount float64) RGB {
	return RGB{
		R: math.Min(255, c.R+(255-c.R)*amount),
		G: math.Min(255, c.G+(255-c.G)*amount),
		B: math.Min(255, c.B+(255-c.B)*amount),
	}
}

// Darken acerca cada canal al negro en proporción amount (0-1).
func Darken(c RGB, amount float64) RGB {
	return RGB{
		R: math.Max(0, c.R*(1-amount)),
		G: math.Max(0, c.G*(1-amount)),
		B: math.Max(0, c.B*(1-amount)),
	}
}

// Mix mezcla a con b en proporción weight (0 = solo a, 1 = solo b).
func Mix(a, b RGB, weight float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*weight,
		G: a.G + (b.G-a.G)*weight,
		B: a.B + (b.B-a.B)*weight,
	}
}

// Luminance es la luminancia relativa WCAG 2.x del color (0 = negro, 1 = blanco).
func Luminance(c RGB) float64 {
	lin := func(v float64) float64 {
		v /= 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio ratio de contraste WCAG entre dos colores, en [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ReadableTextColor elige "#000000" o "#ffffff" como color de texto sobre bg.
// Umbral WCAG AA de 4.5; si ambos lo superan gana el de mayor ratio.
func ReadableTextColor(bg RGB) string {
	cb := ContrastRatio(bg, black)
	cw := ContrastRatio(bg, white)
	if cb >= 4.5 && cw >= 4.5 {
		if cw > cb {
			return white.Hex()
		}
		return black.Hex()
	}
	if cb >= 4.5 {
		return black.Hex()
	}
	if cw >= 4.5 {
		return white.Hex()
	}
	// Ninguno alcanza AA: devolver el menos malo.
	if cw > cb {
		return white.Hex()
	}
	return black.Hex()
}

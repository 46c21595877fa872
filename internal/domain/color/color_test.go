package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitta-app/vitta-api/internal/domain/color"
)

func TestParseHex_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#007aff", "#34c759", "#000000", "#ffffff"} {
		c, err := color.ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}

	// El '#' es opcional y las mayúsculas se aceptan.
	c, err := color.ParseHex("FF00aa")
	require.NoError(t, err)
	assert.Equal(t, "#ff00aa", c.Hex())
}

func TestParseHex_Invalidos(t *testing.T) {
	for _, hex := range []string{"", "#fff", "#gggggg", "#12345", "not-a-color"} {
		_, err := color.ParseHex(hex)
		assert.Error(t, err, "ParseHex(%q) debe fallar", hex)
	}
}

func TestLightenDarken(t *testing.T) {
	c := color.RGB{R: 100, G: 100, B: 100}

	lighter := color.Lighten(c, 0.5)
	assert.InDelta(t, 177.5, lighter.R, 0.01)

	darker := color.Darken(c, 0.5)
	assert.InDelta(t, 50, darker.R, 0.01)

	// Los extremos saturan sin desbordar.
	assert.Equal(t, "#ffffff", color.Lighten(color.RGB{R: 255, G: 255, B: 255}, 1).Hex())
	assert.Equal(t, "#000000", color.Darken(color.RGB{}, 1).Hex())
}

func TestMix(t *testing.T) {
	a := color.RGB{R: 0, G: 0, B: 0}
	b := color.RGB{R: 255, G: 255, B: 255}

	assert.Equal(t, a.Hex(), color.Mix(a, b, 0).Hex())
	assert.Equal(t, b.Hex(), color.Mix(a, b, 1).Hex())
	assert.Equal(t, "#808080", color.Mix(a, b, 0.5).Hex())
}

func TestLuminance_Extremos(t *testing.T) {
	assert.InDelta(t, 0, color.Luminance(color.RGB{}), 0.001)
	assert.InDelta(t, 1, color.Luminance(color.RGB{R: 255, G: 255, B: 255}), 0.001)
}

func TestContrastRatio(t *testing.T) {
	black := color.RGB{}
	white := color.RGB{R: 255, G: 255, B: 255}

	// Blanco sobre negro: el máximo WCAG (21:1), simétrico.
	assert.InDelta(t, 21, color.ContrastRatio(black, white), 0.01)
	assert.InDelta(t, 21, color.ContrastRatio(white, black), 0.01)

	// Un color contra sí mismo: 1:1.
	assert.InDelta(t, 1, color.ContrastRatio(black, black), 0.001)
}

func TestReadableTextColor(t *testing.T) {
	cases := []struct {
		bg   string
		want string
	}{
		{"#ffffff", "#000000"}, // fondo claro: texto negro
		{"#000000", "#ffffff"}, // fondo oscuro: texto blanco
		{"#0000ff", "#ffffff"}, // azul puro es oscuro en luminancia
		{"#007aff", "#000000"}, // el azul de la paleta solo alcanza AA con negro
		{"#34c759", "#000000"}, // verde claro: negro
	}
	for _, tc := range cases {
		bg, err := color.ParseHex(tc.bg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, color.ReadableTextColor(bg), "fondo %s", tc.bg)
	}
}

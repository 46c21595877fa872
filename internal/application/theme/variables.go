package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vitta-app/vitta-api/internal/domain/color"
)

// Variables deriva las variables de estilo de un tema. Es idempotente: mismo
// tema, mismas variables. Además de los cinco campos base se derivan sombra,
// tinte y color de contraste de primary y accent con la aritmética WCAG.
func Variables(t Theme) map[string]string {
	vars := map[string]string{
		"--vitta-name":       fmt.Sprintf("%q", t.Name),
		"--vitta-primary":    t.Primary,
		"--vitta-accent":     t.Accent,
		"--vitta-background": t.Background,
		"--vitta-text":       t.Text,
	}

	if c, err := color.ParseHex(t.Primary); err == nil {
		vars["--vitta-primary-shade"] = color.Darken(c, 0.15).Hex()
		vars["--vitta-primary-tint"] = color.Lighten(c, 0.15).Hex()
		vars["--vitta-primary-contrast"] = color.ReadableTextColor(c)
	}
	if c, err := color.ParseHex(t.Accent); err == nil {
		vars["--vitta-accent-shade"] = color.Darken(c, 0.15).Hex()
		vars["--vitta-accent-tint"] = color.Lighten(c, 0.15).Hex()
		vars["--vitta-accent-contrast"] = color.ReadableTextColor(c)
	}
	return vars
}

// VariablesCSS serializa las variables como una regla :root lista para servir
// en /branding/{tenantId}/variables.css. Orden estable para diffs y cache.
func VariablesCSS(t Theme) string {
	vars := Variables(t)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, vars[k])
	}
	b.WriteString("}\n")
	return b.String()
}

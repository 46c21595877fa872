// Package theme resuelve la paleta de branding por tenant con fallback en
// tres niveles: theme.json del tenant → theme.json por defecto → paleta
// embebida. Load nunca falla: siempre hay un tema utilizable.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/vitta-app/vitta-api/pkg/logger"
)

// Theme paleta de un tenant. name, primary y accent son obligatorios;
// background y text se sintetizan si faltan.
type Theme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// Paleta embebida de último recurso.
var builtin = Theme{
	Name:       "Vitta",
	Primary:    "#007aff",
	Accent:     "#34c759",
	Background: "#ffffff",
	Text:       "#000000",
}

// Builtin devuelve una copia de la paleta embebida.
func Builtin() Theme { return builtin }

// Resolver carga temas desde el directorio de branding con cache por tenant.
type Resolver struct {
	dir string

	mu    sync.RWMutex
	cache map[string]Theme

	log *logger.Logger
}

// NewResolver construye el resolver sobre el directorio de assets
// (<dir>/<tenantId>/theme.json, <dir>/default/theme.json).
func NewResolver(dir string, log *logger.Logger) *Resolver {
	return &Resolver{dir: dir, cache: make(map[string]Theme), log: log}
}

// Load devuelve el tema del tenant, cayendo al tema por defecto y después a la
// paleta embebida. El resultado siempre trae los cinco campos poblados.
func (r *Resolver) Load(tenantID string) Theme {
	r.mu.RLock()
	cached, ok := r.cache[tenantID]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	t, ok := r.readTheme(filepath.Join(r.dir, tenantID, "theme.json"))
	if !ok {
		t, ok = r.readTheme(filepath.Join(r.dir, "default", "theme.json"))
	}
	if !ok {
		t = builtin
	}
	t = fillDefaults(t)

	r.mu.Lock()
	r.cache[tenantID] = t
	r.mu.Unlock()
	return t
}

// Invalidate limpia el cache de temas (todos, o uno si se pasa el id).
func (r *Resolver) Invalidate(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tenantID == "" {
		r.cache = make(map[string]Theme)
		return
	}
	delete(r.cache, tenantID)
}

func (r *Resolver) readTheme(path string) (Theme, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, false
	}
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		r.log.Warn().Err(err).Str("path", path).Msg("theme.json inválido, se ignora")
		return Theme{}, false
	}
	return t, true
}

// fillDefaults completa campos ausentes desde la paleta embebida. No hay más
// validación que la presencia: un hex malformado se detecta al derivar
// variables, no aquí.
func fillDefaults(t Theme) Theme {
	if t.Name == "" {
		t.Name = builtin.Name
	}
	if t.Primary == "" {
		t.Primary = builtin.Primary
	}
	if t.Accent == "" {
		t.Accent = builtin.Accent
	}
	if t.Background == "" {
		t.Background = builtin.Background
	}
	if t.Text == "" {
		t.Text = builtin.Text
	}
	return t
}

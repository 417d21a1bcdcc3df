package mailer

import (
	"embed"
	"fmt"
	"sync"

	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

// TemplateEngine renders the embedded Liquid email templates, caching the
// parsed form per template name.
type TemplateEngine struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{engine: liquid.NewEngine()}
}

// Render processes the named template with the given context.
func (e *TemplateEngine) Render(name string, ctx map[string]interface{}) (string, error) {
	if cached, ok := e.cache.Load(name); ok {
		return cached.(*liquid.Template).RenderString(ctx)
	}

	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tpl, err := e.engine.ParseString(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	e.cache.Store(name, tpl)

	out, err := tpl.RenderString(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out, nil
}

// Package module wires the schema metadata service into the application
package module

import (
	"net/http"
	"time"

	modkit "voiceforce/internal/modkit"
	"voiceforce/internal/modkit/httpkit"
	str "voiceforce/internal/platform/strings"
	"voiceforce/internal/services/schema/domain"
	schemasvc "voiceforce/internal/services/schema/service"
)

// Options configure the schema module
type Options struct {
	Describer domain.DescriberPort
	Objects   []string
	TTL       time.Duration
}

// FromConfig reads module options from SCHEMA_* keys
func FromConfig(cfg modkit.Deps, d domain.DescriberPort) Options {
	c := cfg.Cfg.Prefix("SCHEMA_")
	return Options{
		Describer: d,
		Objects:   c.MayCSV("OBJECTS", nil),
		TTL:       c.MayDuration("TTL", 10*time.Minute),
	}
}

// Ports exposed by the schema module
type Ports struct {
	Schema domain.SchemaPort
}

// Module implements modkit.Module. It owns no routes; other modules consume
// its Schema port
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New constructs the schema module
func New(deps modkit.Deps, opt Options) *Module {
	svc := schemasvc.New(opt.Describer, schemasvc.Config{
		Objects: opt.Objects,
		TTL:     opt.TTL,
	})

	m := &Module{deps: deps, name: "schema"}
	m.ports = Ports{Schema: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}

// Package module wires record resolution into the API using modkit
package module

import (
	"net/http"

	modkit "voiceforce/internal/modkit"
	"voiceforce/internal/modkit/httpkit"
	str "voiceforce/internal/platform/strings"
	"voiceforce/internal/services/resolve/domain"
	resolvehttp "voiceforce/internal/services/resolve/http"
	resolvesvc "voiceforce/internal/services/resolve/service"
)

// Options configure the resolve module with its outbound collaborators
type Options struct {
	Search domain.SearchPort
	Fields []string
}

// FromConfig reads module options from RESOLVE_* keys
func FromConfig(deps modkit.Deps, search domain.SearchPort) Options {
	c := deps.Cfg.Prefix("RESOLVE_")
	return Options{
		Search: search,
		Fields: c.MayCSV("FIELDS", nil),
	}
}

// Ports exposed by the resolve module
type Ports struct {
	Resolver domain.ResolverPort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the resolve module
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("resolve"),
		modkit.WithPrefix("/resolve"),
	}, opts...)...)

	svc := resolvesvc.New(opt.Search, resolvesvc.Config{Fields: opt.Fields})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Resolver: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		resolvehttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

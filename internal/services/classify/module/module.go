// Package module wires classification into the API using modkit
package module

import (
	"net/http"

	modkit "voiceforce/internal/modkit"
	"voiceforce/internal/modkit/httpkit"
	str "voiceforce/internal/platform/strings"
	classifyhttp "voiceforce/internal/services/classify/http"
	classifyrepo "voiceforce/internal/services/classify/repo"
	classifysvc "voiceforce/internal/services/classify/service"

	"voiceforce/internal/services/classify/domain"
	schemadomain "voiceforce/internal/services/schema/domain"
)

// Options configure the classify module with its outbound collaborators
type Options struct {
	Fallback domain.FallbackPort
	Schema   schemadomain.SchemaPort
}

// Ports exposed by the classify module
type Ports struct {
	Classifier domain.ClassifierPort
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

// New constructs the classify module
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("classify"),
		modkit.WithPrefix("/classify"),
	}, opts...)...)

	svc := classifysvc.New(deps.PG, classifyrepo.NewPG(), opt.Fallback, opt.Schema)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Classifier: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		classifyhttp.Register(r, svc)
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

// Package api provides the HTTP API for the application
package api

import (
	"crypto/sha256"
	"encoding/hex"

	"voiceforce/internal/platform/config"
	"voiceforce/internal/platform/logger"
	phttp "voiceforce/internal/platform/net/http"
	"voiceforce/internal/platform/net/middleware"
	"voiceforce/internal/platform/store"

	"voiceforce/internal/adapters/nlp"
	"voiceforce/internal/adapters/salesforce"

	"voiceforce/internal/modkit"
	"voiceforce/internal/modkit/httpkit"
	"voiceforce/internal/modkit/module"

	metamod "voiceforce/internal/services/api/meta/module"
	classifydomain "voiceforce/internal/services/classify/domain"
	classifymod "voiceforce/internal/services/classify/module"
	resolvemod "voiceforce/internal/services/resolve/module"
	schemamod "voiceforce/internal/services/schema/module"
	updatemod "voiceforce/internal/services/update/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Salesforce is the record/search/describe transport; required
	Salesforce *salesforce.Client
	// NLP is the remote classification fallback; nil disables the fallback
	NLP *nlp.Client

	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// the extension authenticates with its per-user key; identity is the
	// digest of the key, so no secret ever reaches the journal or the undo
	// map. AUTH=false drops the requirement for local development
	var authPort middleware.AuthPort
	if opt.Config.MayBool("AUTH", true) {
		authPort = httpkit.NewPortFunc(func(token string) (string, error) {
			sum := sha256.Sum256([]byte(token))
			return hex.EncodeToString(sum[:8]), nil
		})
	}
	authed := modkit.WithMiddlewares(httpkit.Auth(authPort))

	// schema first: classify consumes its metadata port
	schema := schemamod.New(deps, schemamod.FromConfig(deps, opt.Salesforce))
	schemaPort := module.MustPortsOf[schemamod.Ports](schema).Schema

	// a typed nil *nlp.Client must stay a nil port inside the service
	var fallback classifydomain.FallbackPort
	if opt.NLP != nil {
		fallback = opt.NLP
	}

	classify := classifymod.New(deps, classifymod.Options{
		Fallback: fallback,
		Schema:   schemaPort,
	}, authed)

	resolve := resolvemod.New(deps, resolvemod.FromConfig(deps, opt.Salesforce), authed)
	update := updatemod.New(deps, updatemod.Options{Records: opt.Salesforce}, authed)

	mods := []module.Module{
		metamod.New(deps, metamod.Options{CRM: opt.Salesforce}),
		schema,
		classify,
		resolve,
		update,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

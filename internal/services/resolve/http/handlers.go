// Package http provides http transport for record resolution
package http

import (
	stdhttp "net/http"

	"voiceforce/internal/modkit/httpkit"
	"voiceforce/internal/services/resolve/domain"
)

// Register mounts resolve endpoints on the given router
func Register(r httpkit.Router, s domain.ResolverPort) {
	h := &handlers{svc: s}

	// fuzzy keyword to record candidates
	httpkit.PostJSON[domain.ResolveInput](r, "/", h.resolve)

	// 1-based pick from a prior multiple outcome
	httpkit.PostJSON[domain.SelectInput](r, "/select", h.selectCandidate)
}

type handlers struct{ svc domain.ResolverPort }

func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

func (h *handlers) selectCandidate(r *stdhttp.Request, in domain.SelectInput) (any, error) {
	return h.svc.Select(r.Context(), in)
}

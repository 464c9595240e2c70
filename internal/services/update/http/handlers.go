// Package http provides http transport for guarded updates and undo
package http

import (
	stdhttp "net/http"

	"voiceforce/internal/modkit/httpkit"
	"voiceforce/internal/services/update/domain"
)

// Register mounts update endpoints on the given router
func Register(r httpkit.Router, s domain.UpdaterPort) {
	h := &handlers{svc: s}

	// guarded field update
	httpkit.PostJSON[domain.UpdateInput](r, "/", h.update)

	// replay of the caller's most recent update
	httpkit.Post(r, "/undo", h.undo)
}

type handlers struct{ svc domain.UpdaterPort }

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

func (h *handlers) undo(r *stdhttp.Request) (any, error) {
	return h.svc.Undo(r.Context())
}

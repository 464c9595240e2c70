// Package http provides http transport for classification
package http

import (
	stdhttp "net/http"

	"voiceforce/internal/modkit/httpkit"
	"voiceforce/internal/services/classify/domain"
)

// Register mounts classify endpoints on the given router
func Register(r httpkit.Router, s domain.ClassifierPort) {
	h := &handlers{svc: s}

	// transcript in, intent out
	httpkit.PostJSON[domain.Input](r, "/", h.classify)
}

type handlers struct{ svc domain.ClassifierPort }

func (h *handlers) classify(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Classify(r.Context(), in)
}

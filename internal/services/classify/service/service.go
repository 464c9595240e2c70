// Package service implements the classification orchestration: deterministic
// pattern table first, remote classifier second, whitelist validation on
// anything the remote returns
package service

import (
	"context"
	"strings"
	"time"

	"voiceforce/internal/core/intent"
	"voiceforce/internal/core/ruleengine"
	"voiceforce/internal/modkit/repokit"
	perr "voiceforce/internal/platform/errors"
	"voiceforce/internal/platform/logger"
	pnet "voiceforce/internal/platform/net"
	"voiceforce/internal/services/classify/domain"
	"voiceforce/internal/services/classify/repo"
	schemadomain "voiceforce/internal/services/schema/domain"
)

// Service implements domain.ClassifierPort
type Service struct {
	// DB and Binder are optional; when DB is nil the journal is disabled
	// (one-shot CLI use)
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]

	Rules *ruleengine.Engine
	// Fallback is optional; without it unmatched transcripts resolve to the
	// unknown outcome immediately
	Fallback domain.FallbackPort
	// Schema is optional; without it validation runs with an empty schema
	Schema schemadomain.SchemaPort

	log logger.Logger
}

// New constructs a classify service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], fallback domain.FallbackPort, schema schemadomain.SchemaPort) *Service {
	return &Service{
		DB:       db,
		Binder:   b,
		Rules:    ruleengine.New(),
		Fallback: fallback,
		Schema:   schema,
		log:      *logger.Named("classify"),
	}
}

// Classify implements domain.ClassifierPort.
//
// A transcript that neither path can classify is a typed unknown result, not
// an error. Errors are reserved for the remote transport failing outright
// (rate limit, auth, upstream down)
func (s *Service) Classify(ctx context.Context, in domain.Input) (domain.Result, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return domain.Result{}, perr.WithField(perr.Validationf("transcript is required"), "text")
	}

	if it := s.Rules.Match(text); it != nil {
		res := domain.Result{Intent: *it, Source: domain.SourceRule}
		s.journal(ctx, text, res)
		return res, nil
	}

	if s.Fallback == nil {
		res := domain.Result{
			Intent: intent.Unknown("音声コマンドを認識できませんでした"),
			Source: domain.SourceRejected,
		}
		s.journal(ctx, text, res)
		return res, nil
	}

	sch := s.schema(ctx)
	raw, err := s.Fallback.Classify(ctx, text, sch.Describe(), pnet.UserID(ctx))
	if err != nil {
		return domain.Result{}, err
	}

	it, verr := intent.ValidateJSON(raw, sch)
	res := domain.Result{Intent: it, Source: domain.SourceFallback}
	if verr != nil {
		s.log.Debug().Err(verr).Msg("remote intent rejected by validation")
		res.Source = domain.SourceRejected
	}
	s.journal(ctx, text, res)
	return res, nil
}

func (s *Service) schema(ctx context.Context) *intent.Schema {
	if s.Schema == nil {
		return nil
	}
	return s.Schema.Schema(ctx)
}

// journal records the outcome best-effort; a journal failure never fails the
// classification
func (s *Service) journal(ctx context.Context, text string, res domain.Result) {
	if s.DB == nil {
		return
	}
	e := repo.Entry{
		UserID:     pnet.UserID(ctx),
		Transcript: text,
		Action:     string(res.Intent.Action),
		Object:     res.Intent.Object,
		Confidence: res.Intent.Confidence,
		Source:     string(res.Source),
		CreatedAt:  time.Now().UTC(),
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Insert(ctx, e)
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("journal insert failed")
	}
}

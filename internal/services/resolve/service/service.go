// Package service implements the fuzzy search cascade: term variants tried
// in priority order against the CRM, stopping at the first that yields rows,
// with the count-branching resolver applied to the result
package service

import (
	"context"

	"voiceforce/internal/core/intent"
	"voiceforce/internal/core/resolver"
	"voiceforce/internal/core/searchterm"
	perr "voiceforce/internal/platform/errors"
	"voiceforce/internal/platform/logger"
	"voiceforce/internal/services/resolve/domain"
)

// Config for the resolve service
type Config struct {
	// Fields selected per candidate row; defaults to Id and Name
	Fields []string
}

// Service implements domain.ResolverPort
type Service struct {
	Search domain.SearchPort
	Cfg    Config

	log logger.Logger
}

// New constructs a resolve service
func New(search domain.SearchPort, cfg Config) *Service {
	if len(cfg.Fields) == 0 {
		cfg.Fields = []string{"Id", "Name"}
	}
	return &Service{Search: search, Cfg: cfg, log: *logger.Named("resolve")}
}

// Resolve implements domain.ResolverPort. Variants are tried sequentially
// and the cascade short-circuits on the first one with hits, so the exact
// form always wins over relaxed forms. A transport failure aborts the
// cascade; zero hits across every variant is the not_found outcome, not an
// error
func (s *Service) Resolve(ctx context.Context, in domain.ResolveInput) (domain.Output, error) {
	if !intent.IsObjectName(in.Object) {
		return domain.Output{}, perr.WithField(
			perr.InvalidArgf("object %q is not a valid object API name", in.Object), "object",
		)
	}

	variants := searchterm.Variants(in.Keyword)
	if len(variants) == 0 {
		return domain.Output{}, perr.WithField(perr.Validationf("keyword is required"), "keyword")
	}

	for _, term := range variants {
		recs, err := s.Search.Search(ctx, term, in.Object, s.Cfg.Fields)
		if err != nil {
			return domain.Output{}, err
		}
		if len(recs) == 0 {
			continue
		}

		res := resolver.Resolve(recs)
		out := domain.Output{Resolution: res, Term: term}
		if res.Outcome == resolver.OutcomeSingle {
			out.URL = domain.RecordURL(in.Object, recordID(res.Record))
		}
		s.log.Debug().Str("object", in.Object).Str("term", term).
			Str("outcome", string(res.Outcome)).Msg("cascade settled")
		return out, nil
	}

	return domain.Output{Resolution: resolver.Resolve(nil)}, nil
}

// Select implements domain.ResolverPort. Index is 1-based per the voice
// selection grammar; anything outside the candidate range is the caller's
// mistake
func (s *Service) Select(ctx context.Context, in domain.SelectInput) (domain.Output, error) {
	rec := resolver.SelectByIndex(in.Candidates, in.Index)
	if rec == nil {
		return domain.Output{}, perr.WithField(
			perr.InvalidArgf("index %d outside candidate range 1..%d", in.Index, len(in.Candidates)),
			"index",
		)
	}

	res := resolver.Resolve([]resolver.Record{rec})
	return domain.Output{
		Resolution: res,
		URL:        domain.RecordURL(in.Object, recordID(rec)),
	}, nil
}

func recordID(r resolver.Record) string {
	if r == nil {
		return ""
	}
	id, _ := r["Id"].(string)
	return id
}

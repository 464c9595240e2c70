// Package service provides the schema metadata service: a TTL cache over the
// CRM object describe calls
package service

import (
	"context"
	"sync"
	"time"

	"voiceforce/internal/core/intent"
	"voiceforce/internal/platform/logger"
	"voiceforce/internal/services/schema/domain"
)

// Config for the schema service
type Config struct {
	// Objects is the set of object API names worth describing; defaults to
	// the standard sales objects when empty
	Objects []string
	// TTL bounds cache staleness; defaults to 10 minutes if <=0
	TTL time.Duration
}

// defaultObjects covers the objects the voice grammar knows about
var defaultObjects = []string{"Account", "Contact", "Opportunity", "Lead", "Case", "Task", "Event"}

// Service implements domain.SchemaPort
type Service struct {
	Describer domain.DescriberPort
	Cfg       Config

	log logger.Logger

	mu        sync.Mutex
	cached    *intent.Schema
	fetchedAt time.Time

	// test seam
	now func() time.Time
}

// New constructs a schema service
func New(d domain.DescriberPort, cfg Config) *Service {
	if len(cfg.Objects) == 0 {
		cfg.Objects = defaultObjects
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	return &Service{
		Describer: d,
		Cfg:       cfg,
		log:       *logger.Named("schema"),
		now:       time.Now,
	}
}

// Schema implements domain.SchemaPort. Describe failures degrade rather than
// fail: objects that cannot be described are left out, and when nothing can
// be described the empty schema disables whitelist validation downstream
func (s *Service) Schema(ctx context.Context) *intent.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.Cfg.TTL {
		return s.cached
	}

	sch := &intent.Schema{Objects: make(map[string]intent.ObjectMeta, len(s.Cfg.Objects))}
	for _, name := range s.Cfg.Objects {
		meta, err := s.Describer.DescribeObject(ctx, name)
		if err != nil {
			s.log.Warn().Err(err).Str("object", name).Msg("describe failed, object left out of schema")
			continue
		}
		sch.Objects[name] = meta
	}

	if sch.Empty() && s.cached != nil {
		// keep serving the stale copy rather than dropping to no validation
		s.log.Warn().Msg("schema refresh produced nothing, keeping stale schema")
		return s.cached
	}

	s.cached = sch
	s.fetchedAt = s.now()
	return s.cached
}

// Metadata implements domain.SchemaPort
func (s *Service) Metadata(ctx context.Context) string {
	return s.Schema(ctx).Describe()
}

// Package service implements guarded record updates: fetch the current
// record, compare its modification stamp against the baseline the user last
// saw, and only then write. Applied updates are journaled per user for
// single-step undo
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"voiceforce/internal/core/intent"
	"voiceforce/internal/core/undo"
	perr "voiceforce/internal/platform/errors"
	"voiceforce/internal/platform/logger"
	pnet "voiceforce/internal/platform/net"
	"voiceforce/internal/services/update/domain"
)

// stampField is the transport's modification stamp; comparison is exact
// string equality, no parsing
const stampField = "LastModifiedDate"

// Service implements domain.UpdaterPort
type Service struct {
	Records domain.RecordPort

	log logger.Logger

	// per-user undo stacks; the stacks themselves are not goroutine safe so
	// all access goes through mu
	mu     sync.Mutex
	stacks map[string]*undo.Stack

	// test seam
	now func() time.Time
}

// New constructs an update service
func New(records domain.RecordPort) *Service {
	return &Service{
		Records: records,
		log:     *logger.Named("update"),
		stacks:  make(map[string]*undo.Stack),
		now:     time.Now,
	}
}

// Update implements domain.UpdaterPort.
//
// When in.LastModified is set and the record's current stamp differs, the
// write is refused with a conflict carrying the current stamp so the client
// can re-read and retry. An absent baseline skips the guard
func (s *Service) Update(ctx context.Context, in domain.UpdateInput) (domain.UpdateOutput, error) {
	if !intent.IsObjectName(in.Object) {
		return domain.UpdateOutput{}, perr.WithField(
			perr.InvalidArgf("object %q is not a valid object API name", in.Object), "object",
		)
	}
	if !intent.IsRecordID(in.RecordID) {
		return domain.UpdateOutput{}, perr.WithField(
			perr.InvalidArgf("record id %q is not a valid record id", in.RecordID), "record_id",
		)
	}
	if len(in.Fields) == 0 {
		return domain.UpdateOutput{}, perr.WithField(perr.Validationf("fields are required"), "fields")
	}

	names := fieldNames(in.Fields)

	current, err := s.Records.GetRecord(ctx, in.Object, in.RecordID, names)
	if err != nil {
		return domain.UpdateOutput{}, err
	}

	stamp, _ := current[stampField].(string)
	if in.LastModified != "" && stamp != in.LastModified {
		return domain.UpdateOutput{}, perr.WithField(
			perr.Conflictf("record was modified by someone else, current stamp is %s", stamp),
			stampField,
		)
	}

	prev := make(map[string]any, len(names))
	for _, n := range names {
		prev[n] = current[n]
	}

	if err := s.Records.UpdateRecord(ctx, in.Object, in.RecordID, in.Fields); err != nil {
		return domain.UpdateOutput{}, err
	}

	s.push(pnet.UserID(ctx), undo.Entry{
		ObjectName:     in.Object,
		RecordID:       in.RecordID,
		PreviousFields: prev,
		UpdatedFields:  in.Fields,
		Timestamp:      s.now().UTC(),
	})

	return domain.UpdateOutput{
		Object:   in.Object,
		RecordID: in.RecordID,
		Updated:  names,
		Message:  "更新しました",
	}, nil
}

// Undo implements domain.UpdaterPort. It replays the previous field values
// of the user's most recent update. A failed replay puts the entry back so
// the undo is not lost to a transient transport error
func (s *Service) Undo(ctx context.Context) (domain.UndoOutput, error) {
	uid := pnet.UserID(ctx)

	e := s.pop(uid)
	if e == nil {
		return domain.UndoOutput{
			Reverted: false,
			Message:  "取り消す操作はありません",
		}, nil
	}

	if err := s.Records.UpdateRecord(ctx, e.ObjectName, e.RecordID, e.PreviousFields); err != nil {
		s.push(uid, *e)
		return domain.UndoOutput{}, err
	}

	return domain.UndoOutput{
		Reverted: true,
		Object:   e.ObjectName,
		RecordID: e.RecordID,
		Fields:   fieldNames(e.PreviousFields),
		Message:  "直前の更新を取り消しました",
	}, nil
}

func (s *Service) push(uid string, e undo.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stacks[uid]
	if st == nil {
		st = undo.New()
		s.stacks[uid] = st
	}
	st.Push(e)
}

func (s *Service) pop(uid string) *undo.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stacks[uid]
	if st == nil {
		return nil
	}
	return st.Pop()
}

func fieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package service

import (
	"context"
	"fmt"
	"testing"

	"voiceforce/internal/core/undo"
	perr "voiceforce/internal/platform/errors"
	pnet "voiceforce/internal/platform/net"
	"voiceforce/internal/services/update/domain"
)

type fakeRecords struct {
	record    map[string]any
	getErr    error
	updateErr error

	gets    int
	updates []map[string]any
}

func (f *fakeRecords) GetRecord(_ context.Context, _, _ string, fields []string) (map[string]any, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make(map[string]any, len(fields)+1)
	for k, v := range f.record {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRecords) UpdateRecord(_ context.Context, _, _ string, fields map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fields)
	return nil
}

const recID = "006000000000001AAA"

func input(fields map[string]any, baseline string) domain.UpdateInput {
	return domain.UpdateInput{
		Object:       "Opportunity",
		RecordID:     recID,
		Fields:       fields,
		LastModified: baseline,
	}
}

func TestUpdateGuardRefusesOnStampMismatch(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)

	_, err := s.Update(context.Background(), input(
		map[string]any{"StageName": "Closed Won"}, "2025-06-01T09:00:00.000+0000",
	))
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(fr.updates) != 0 {
		t.Fatalf("no write may happen on conflict, got %d", len(fr.updates))
	}
}

func TestUpdateGuardPassesOnMatchingStamp(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)

	out, err := s.Update(context.Background(), input(
		map[string]any{"StageName": "Closed Won"}, "2025-06-01T10:30:00.000+0000",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fr.updates) != 1 {
		t.Fatalf("expected one write, got %d", len(fr.updates))
	}
	if len(out.Updated) != 1 || out.Updated[0] != "StageName" {
		t.Fatalf("unexpected updated fields %v", out.Updated)
	}
}

func TestUpdateAbsentBaselineSkipsGuard(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)

	if _, err := s.Update(context.Background(), input(map[string]any{"StageName": "Closed Won"}, "")); err != nil {
		t.Fatalf("absent baseline must skip the guard: %v", err)
	}
	if len(fr.updates) != 1 {
		t.Fatalf("expected one write, got %d", len(fr.updates))
	}
}

func TestUpdateValidatesInput(t *testing.T) {
	s := New(&fakeRecords{})

	cases := []struct {
		name string
		in   domain.UpdateInput
	}{
		{"bad object", domain.UpdateInput{Object: "Op;DROP", RecordID: recID, Fields: map[string]any{"A": 1}}},
		{"bad record id", domain.UpdateInput{Object: "Opportunity", RecordID: "nope", Fields: map[string]any{"A": 1}}},
		{"empty fields", domain.UpdateInput{Object: "Opportunity", RecordID: recID, Fields: nil}},
	}
	for _, tc := range cases {
		_, err := s.Update(context.Background(), tc.in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestUndoReplaysPreviousValues(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)
	ctx := pnet.WithUser(context.Background(), "user-1")

	if _, err := s.Update(ctx, input(map[string]any{"StageName": "Closed Won"}, "")); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	out, err := s.Undo(ctx)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if !out.Reverted {
		t.Fatalf("expected reverted outcome")
	}
	last := fr.updates[len(fr.updates)-1]
	if last["StageName"] != "Prospecting" {
		t.Fatalf("expected previous value replayed, wrote %v", last)
	}
}

func TestUndoEmptyStackIsTypedOutcome(t *testing.T) {
	s := New(&fakeRecords{})
	out, err := s.Undo(pnet.WithUser(context.Background(), "user-1"))
	if err != nil {
		t.Fatalf("empty stack must not be an error: %v", err)
	}
	if out.Reverted {
		t.Fatalf("expected nothing to revert")
	}
}

func TestUndoStacksAreIsolatedPerUser(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)

	alice := pnet.WithUser(context.Background(), "alice")
	bob := pnet.WithUser(context.Background(), "bob")

	if _, err := s.Update(alice, input(map[string]any{"StageName": "Closed Won"}, "")); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	out, err := s.Undo(bob)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if out.Reverted {
		t.Fatalf("bob must not see alice's undo entry")
	}

	out, err = s.Undo(alice)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if !out.Reverted {
		t.Fatalf("alice's entry should still be there")
	}
}

func TestUndoFailedReplayKeepsEntry(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)
	ctx := pnet.WithUser(context.Background(), "user-1")

	if _, err := s.Update(ctx, input(map[string]any{"StageName": "Closed Won"}, "")); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	fr.updateErr = perr.Unavailablef("write path down")
	if _, err := s.Undo(ctx); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}

	fr.updateErr = nil
	out, err := s.Undo(ctx)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !out.Reverted {
		t.Fatalf("entry must survive a failed replay")
	}
}

func TestUndoEvictionKeepsMostRecentEntries(t *testing.T) {
	fr := &fakeRecords{record: map[string]any{
		"StageName":        "Prospecting",
		"LastModifiedDate": "2025-06-01T10:30:00.000+0000",
	}}
	s := New(fr)
	ctx := pnet.WithUser(context.Background(), "user-1")

	for i := 0; i < undo.Capacity+3; i++ {
		in := input(map[string]any{"StageName": fmt.Sprintf("Stage %d", i)}, "")
		if _, err := s.Update(ctx, in); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	reverted := 0
	for {
		out, err := s.Undo(ctx)
		if err != nil {
			t.Fatalf("undo failed: %v", err)
		}
		if !out.Reverted {
			break
		}
		reverted++
	}
	if reverted != undo.Capacity {
		t.Fatalf("expected %d retained entries, reverted %d", undo.Capacity, reverted)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"voiceforce/internal/core/intent"
	perr "voiceforce/internal/platform/errors"
)

type fakeDescriber struct {
	calls int
	metas map[string]intent.ObjectMeta
	errs  map[string]error
}

func (f *fakeDescriber) DescribeObject(_ context.Context, name string) (intent.ObjectMeta, error) {
	f.calls++
	if err, ok := f.errs[name]; ok {
		return intent.ObjectMeta{}, err
	}
	if m, ok := f.metas[name]; ok {
		return m, nil
	}
	return intent.ObjectMeta{}, perr.NotFoundf("no such object %s", name)
}

func TestSchemaFetchesConfiguredObjects(t *testing.T) {
	d := &fakeDescriber{metas: map[string]intent.ObjectMeta{
		"Account":     {Label: "取引先", EditableFields: []string{"Name", "Phone"}},
		"Opportunity": {Label: "商談", EditableFields: []string{"StageName", "Amount"}},
	}}
	s := New(d, Config{Objects: []string{"Account", "Opportunity"}})

	sch := s.Schema(context.Background())
	if sch.Empty() {
		t.Fatalf("expected populated schema")
	}
	if !sch.HasObject("Account") || !sch.HasObject("Opportunity") {
		t.Fatalf("expected both objects, got %+v", sch.Objects)
	}
	if !sch.FieldEditable("Opportunity", "StageName") {
		t.Fatalf("expected StageName editable on Opportunity")
	}
	if d.calls != 2 {
		t.Fatalf("expected 2 describe calls, got %d", d.calls)
	}
}

func TestSchemaCachesWithinTTL(t *testing.T) {
	d := &fakeDescriber{metas: map[string]intent.ObjectMeta{
		"Account": {Label: "取引先", EditableFields: []string{"Name"}},
	}}
	s := New(d, Config{Objects: []string{"Account"}, TTL: time.Minute})

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Schema(context.Background())
	s.Schema(context.Background())
	if d.calls != 1 {
		t.Fatalf("expected 1 describe call while fresh, got %d", d.calls)
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	s.Schema(context.Background())
	if d.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", d.calls)
	}
}

func TestSchemaSkipsFailedObjects(t *testing.T) {
	d := &fakeDescriber{
		metas: map[string]intent.ObjectMeta{"Account": {Label: "取引先"}},
		errs:  map[string]error{"Lead": perr.Unavailablef("describe down")},
	}
	s := New(d, Config{Objects: []string{"Account", "Lead"}})

	sch := s.Schema(context.Background())
	if !sch.HasObject("Account") {
		t.Fatalf("expected Account present")
	}
	if sch.HasObject("Lead") {
		t.Fatalf("expected Lead absent after describe failure")
	}
}

func TestSchemaKeepsStaleCopyWhenRefreshFails(t *testing.T) {
	d := &fakeDescriber{metas: map[string]intent.ObjectMeta{
		"Account": {Label: "取引先"},
	}}
	s := New(d, Config{Objects: []string{"Account"}, TTL: time.Minute})

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	first := s.Schema(context.Background())
	if first.Empty() {
		t.Fatalf("expected populated schema on first fetch")
	}

	d.errs = map[string]error{"Account": perr.Unavailablef("describe down")}
	d.metas = nil
	s.now = func() time.Time { return base.Add(2 * time.Minute) }

	second := s.Schema(context.Background())
	if second.Empty() {
		t.Fatalf("expected stale schema to survive a failed refresh")
	}
}

func TestMetadataSerializesSchema(t *testing.T) {
	d := &fakeDescriber{metas: map[string]intent.ObjectMeta{
		"Account": {Label: "取引先", EditableFields: []string{"Name"}},
	}}
	s := New(d, Config{Objects: []string{"Account"}})

	md := s.Metadata(context.Background())
	if md == "" {
		t.Fatalf("expected non-empty metadata string")
	}
}

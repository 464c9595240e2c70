// Package domain defines types and ports for guarded record updates and undo
package domain

import "context"

// UpdateInput is one guarded field update
type UpdateInput struct {
	Object   string         `json:"object" validate:"required"`
	RecordID string         `json:"record_id" validate:"required"`
	Fields   map[string]any `json:"fields" validate:"required"`

	// LastModified is the record stamp captured when the record was last
	// shown to the user. Empty skips the concurrency guard; the update is
	// then last-writer-wins on purpose
	LastModified string `json:"last_modified,omitempty"`
}

// UpdateOutput reports an applied update
type UpdateOutput struct {
	Object   string   `json:"object"`
	RecordID string   `json:"record_id"`
	Updated  []string `json:"updated"`
	Message  string   `json:"message"`
}

// UndoOutput reports an undo attempt. An empty stack is the Reverted=false
// outcome, not an error
type UndoOutput struct {
	Reverted bool     `json:"reverted"`
	Object   string   `json:"object,omitempty"`
	RecordID string   `json:"record_id,omitempty"`
	Fields   []string `json:"fields,omitempty"`
	Message  string   `json:"message"`
}

// UpdaterPort is the inbound port for guarded updates
type UpdaterPort interface {
	Update(ctx context.Context, in UpdateInput) (UpdateOutput, error)
	Undo(ctx context.Context) (UndoOutput, error)
}

// RecordPort is the outbound record transport. Implemented by the
// salesforce adapter; GetRecord always carries the LastModifiedDate stamp
type RecordPort interface {
	GetRecord(ctx context.Context, objectName, id string, fields []string) (map[string]any, error)
	UpdateRecord(ctx context.Context, objectName, id string, fields map[string]any) error
}

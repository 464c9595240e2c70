// Package domain defines ports for CRM schema metadata
package domain

import (
	"context"

	"voiceforce/internal/core/intent"
)

// DescriberPort fetches object metadata from the CRM. Implemented by the
// salesforce adapter
type DescriberPort interface {
	// DescribeObject returns the label and editable-field set for one object
	DescribeObject(ctx context.Context, objectName string) (intent.ObjectMeta, error)
}

// SchemaPort serves the cached schema whitelist to consumers
type SchemaPort interface {
	// Schema returns the current whitelist. An empty schema is a valid
	// answer meaning metadata is unavailable; validation degrades per the
	// intent package contract
	Schema(ctx context.Context) *intent.Schema

	// Metadata returns the compact serialized schema description used to
	// ground the remote classifier
	Metadata(ctx context.Context) string
}

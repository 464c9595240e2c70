package salesforce

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	perr "voiceforce/internal/platform/errors"
)

// GetRecord fetches one record by id, limited to the requested fields.
// LastModifiedDate is always included so callers can capture an update
// baseline from any fetch
func (c *Client) GetRecord(ctx context.Context, objectName, id string, fields []string) (map[string]any, error) {
	withStamp := fields
	if !containsField(fields, "LastModifiedDate") {
		withStamp = append(append([]string(nil), fields...), "LastModifiedDate")
	}

	u := c.base() + "/sobjects/" + url.PathEscape(objectName) + "/" + url.PathEscape(id)
	if len(withStamp) > 0 {
		u += "?fields=" + url.QueryEscape(strings.Join(withStamp, ","))
	}

	body, err := c.do(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	var rec map[string]any
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "salesforce record decode failed")
	}
	return rec, nil
}

// UpdateRecord patches fields onto the record. Success is a bodyless 204;
// conflicts (locked rows, concurrent modification) come back as the typed
// Conflict error from the shared request path
func (c *Client) UpdateRecord(ctx context.Context, objectName, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return perr.InvalidArgf("update fields are empty")
	}
	u := c.base() + "/sobjects/" + url.PathEscape(objectName) + "/" + url.PathEscape(id)
	_, err := c.do(ctx, "PATCH", u, fields)
	return err
}

func containsField(fields []string, want string) bool {
	for _, f := range fields {
		if f == want {
			return true
		}
	}
	return false
}

package salesforce

import (
	"context"
	"encoding/json"
	"net/url"

	"voiceforce/internal/core/intent"
	perr "voiceforce/internal/platform/errors"
)

// describeResponse is the subset of /describe the assistant cares about
type describeResponse struct {
	Label  string `json:"label"`
	Fields []struct {
		Name       string `json:"name"`
		Updateable bool   `json:"updateable"`
	} `json:"fields"`
}

// DescribeObject fetches object metadata and reduces it to the label plus
// the updateable field names. This feeds the validation whitelist for
// classifier output
func (c *Client) DescribeObject(ctx context.Context, objectName string) (intent.ObjectMeta, error) {
	u := c.base() + "/sobjects/" + url.PathEscape(objectName) + "/describe"
	body, err := c.do(ctx, "GET", u, nil)
	if err != nil {
		return intent.ObjectMeta{}, err
	}

	var out describeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return intent.ObjectMeta{}, perr.Wrap(err, perr.ErrorCodeJSON, "salesforce describe decode failed")
	}

	meta := intent.ObjectMeta{Label: out.Label}
	for _, f := range out.Fields {
		if f.Updateable {
			meta.EditableFields = append(meta.EditableFields, f.Name)
		}
	}
	return meta, nil
}

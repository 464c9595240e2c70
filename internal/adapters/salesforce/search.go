package salesforce

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"voiceforce/internal/core/resolver"
	"voiceforce/internal/core/searchterm"
	perr "voiceforce/internal/platform/errors"
)

// searchLimit bounds one SOSL attempt. More than a handful of rows collapses
// into the too_many branch anyway
const searchLimit = 20

// soslResponse is the envelope of GET /search
type soslResponse struct {
	SearchRecords []map[string]any `json:"searchRecords"`
}

// Search runs one SOSL FIND over objectName's name fields and returns the
// raw candidate rows. The term is escaped before embedding; a trailing
// wildcard star from the variant generator is preserved as syntax
func (c *Client) Search(ctx context.Context, term, objectName string, fields []string) ([]resolver.Record, error) {
	if strings.TrimSpace(term) == "" {
		return nil, perr.InvalidArgf("search term is empty")
	}
	if len(fields) == 0 {
		fields = []string{"Id", "Name"}
	}

	q := "FIND {" + embedTerm(term) + "} IN NAME FIELDS RETURNING " +
		objectName + "(" + strings.Join(fields, ", ") + ") LIMIT " + strconv.Itoa(searchLimit)

	u := c.base() + "/search/?q=" + url.QueryEscape(q)
	body, err := c.do(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	var out soslResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "salesforce search decode failed")
	}
	return out.SearchRecords, nil
}

// embedTerm escapes SOSL-reserved characters but keeps one trailing star as
// the wildcard operator the cascade deliberately appended
func embedTerm(term string) string {
	wildcard := strings.HasSuffix(term, "*")
	if wildcard {
		term = term[:len(term)-1]
	}
	escaped := searchterm.EscapeSOSL(term)
	if wildcard {
		escaped += "*"
	}
	return escaped
}

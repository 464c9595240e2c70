package domain

import "net/url"

// RecordURL builds the relative CRM URL for a single record page
func RecordURL(object, id string) string {
	return "/lightning/r/" + url.PathEscape(object) + "/" + url.PathEscape(id) + "/view"
}

// ListURL builds the relative CRM URL for an object list view. filterName is
// a semantic hint (Recent, Mine, All) passed through unmapped
func ListURL(object, filterName string) string {
	u := "/lightning/o/" + url.PathEscape(object) + "/list"
	if filterName != "" {
		u += "?filterName=" + url.QueryEscape(filterName)
	}
	return u
}

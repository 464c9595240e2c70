package intent

import (
	"sort"
	"strings"
)

// ObjectMeta describes one CRM object as far as validation cares: its
// user-facing label and the fields voice updates are allowed to touch
type ObjectMeta struct {
	Label          string   `json:"label"`
	EditableFields []string `json:"editable_fields"`
}

// Schema is the known-object whitelist handed to Validate. A nil or empty
// schema disables the object/field membership checks (metadata unavailable),
// per the validation contract
type Schema struct {
	Objects map[string]ObjectMeta `json:"objects"`
}

// HasObject reports whether name is a known object API name
func (s *Schema) HasObject(name string) bool {
	if s == nil || len(s.Objects) == 0 {
		return false
	}
	_, ok := s.Objects[name]
	return ok
}

// Empty reports whether no metadata is loaded
func (s *Schema) Empty() bool { return s == nil || len(s.Objects) == 0 }

// FieldEditable reports whether field is in the editable set of object
func (s *Schema) FieldEditable(object, field string) bool {
	if s == nil {
		return false
	}
	meta, ok := s.Objects[object]
	if !ok {
		return false
	}
	for _, f := range meta.EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

// Describe serializes the schema as a compact single-line description used to
// ground the remote classifier's object and field names. Objects are emitted
// in sorted order so the string is stable across calls
func (s *Schema) Describe() string {
	if s.Empty() {
		return ""
	}
	names := make([]string, 0, len(s.Objects))
	for n := range s.Objects {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		meta := s.Objects[n]
		b.WriteString(n)
		if meta.Label != "" {
			b.WriteString("(" + meta.Label + ")")
		}
		b.WriteString(": ")
		b.WriteString(strings.Join(meta.EditableFields, ","))
	}
	return b.String()
}

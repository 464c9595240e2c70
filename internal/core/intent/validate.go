package intent

import (
	"encoding/json"

	perr "voiceforce/internal/platform/errors"
)

// Validate is the sole safe constructor for untrusted classifier output.
// Checks run in order and the first violation rejects the whole payload:
//
//  1. action is a member of the closed action set
//  2. confidence is in [0,1]
//  3. object, when present and when schema metadata is loaded, is a known
//     object API name
//  4. fields, when present, require object to be present too, and every key
//     must be in that object's editable set
//
// A rejected payload is never partially trusted; callers treat the rejection
// as "no actionable intent"
func Validate(candidate Intent, schema *Schema) (Intent, error) {
	if !ValidAction(candidate.Action) {
		return Unknown("unsupported action"), perr.WithOp(
			perr.Validationf("action %q is not in the valid action set", candidate.Action),
			"intent.validate",
		)
	}

	if candidate.Confidence < 0 || candidate.Confidence > 1 {
		return Unknown("confidence out of range"), perr.WithField(
			perr.Validationf("confidence %v outside [0,1]", candidate.Confidence),
			"confidence",
		)
	}

	if candidate.Object != "" && !schema.Empty() {
		if !schema.HasObject(candidate.Object) {
			return Unknown("unknown object"), perr.WithField(
				perr.Validationf("object %q is not in the known object set", candidate.Object),
				"object",
			)
		}
	}

	if len(candidate.Fields) > 0 {
		if candidate.Object == "" {
			return Unknown("fields without object"), perr.WithField(
				perr.Validationf("fields present but object is missing"),
				"object",
			)
		}
		if !schema.Empty() {
			for key := range candidate.Fields {
				if !schema.FieldEditable(candidate.Object, key) {
					return Unknown("field not editable"), perr.WithField(
						perr.Validationf("field %q is not editable on %s", key, candidate.Object),
						"fields",
					)
				}
			}
		}
	}

	return candidate, nil
}

// ValidateJSON decodes raw classifier JSON and runs Validate on it.
// Malformed JSON is a validation rejection, not a transport failure: the
// endpoint answered, the payload just can't be trusted
func ValidateJSON(raw []byte, schema *Schema) (Intent, error) {
	var candidate Intent
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return Unknown("unparseable classifier output"), perr.Wrap(
			err, perr.ErrorCodeValidation, "classifier payload is not valid intent JSON",
		)
	}
	return Validate(candidate, schema)
}

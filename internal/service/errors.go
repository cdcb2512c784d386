package service

import "strings"

// ValidationError reports a request rejected before reaching storage:
// missing required fields, a value outside a closed enum, or a bad
// query parameter. Maps to 400 at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that an addressed or referenced entity does not
// exist. Maps to 404.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// ConflictError reports a uniqueness violation. Maps to 400, matching
// the original API which never used 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// requiredField pairs a field name with whether the request supplied it.
// Empty strings and zero ids count as missing.
type requiredField struct {
	name    string
	present bool
}

// checkRequired aggregates every missing field into one error.
func checkRequired(fields []requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}

func invalidEnum(field, accepted string) error {
	return &ValidationError{Message: "Invalid " + field + ". Must be one of: " + accepted}
}

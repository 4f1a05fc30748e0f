package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide validator shared by every handler. The
// instance caches struct metadata, so reusing it avoids re-parsing the
// validation tags on every request.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request DTO against its validation tags.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

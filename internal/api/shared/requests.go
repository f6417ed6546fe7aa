package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for request payloads.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeJSONStrict decodes the request body rejecting unknown fields.
// Partial-update (patch) payloads use this so misspelled or unsupported
// fields fail loudly instead of being silently dropped.
func DecodeJSONStrict(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidateRequest validates the given struct using its validator tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

package render

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/aaronzipp/douze-points/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.For("render").WithError(err).Warn("writing response body failed")
	}
}

// Error writes an ErrorResponse.
func Error(w http.ResponseWriter, status int, code, detail string) {
	JSON(w, status, ErrorResponse{Code: code, Detail: detail})
}

// Marshal renders v as a compact JSON string, for event payloads.
func Marshal(v any) (string, error) {
	return json.MarshalToString(v)
}

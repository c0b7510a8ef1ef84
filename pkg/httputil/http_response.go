package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// DataResponse wraps a successful payload. Warning reports a non-blocking
// problem such as a failed write to the store.
type DataResponse struct {
	Data    any    `json:"data"`
	Warning string `json:"warning,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteData writes body inside a DataResponse, attaching warning when set.
func WriteData(w http.ResponseWriter, statusCode int, body any, warning error) {
	resp := DataResponse{Data: body}
	if warning != nil {
		resp.Warning = warning.Error()
	}
	WriteJSONResponse(w, statusCode, resp)
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/lidkit/pkg/errors"
	"github.com/matzehuels/lidkit/pkg/render"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Line    int         `json:"line,omitempty"`
	Token   int         `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	line, token := errors.Position(err)
	writeJSON(w, statusFor(code), errorBody{
		Code:    code,
		Message: errors.UserMessage(err),
		Line:    line,
		Token:   token,
	})
}

// statusFor maps error codes onto HTTP status codes. Faults in the
// uploaded content are 422; malformed requests are 400.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeMalformedNumber, errors.ErrCodeInvalidCode, errors.ErrCodeLengthMismatch,
		errors.ErrCodeMissingMarker, errors.ErrCodeInvalidAngles, errors.ErrCodeTooManyLines,
		errors.ErrCodePlaneCountMismatch, errors.ErrCodeInconsistentAngles:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPath, errors.ErrCodeInvalidFormat,
		errors.ErrCodeUnsupportedExtension, errors.ErrCodeNoWebs:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

var contentTypes = map[string]string{
	render.FormatSVG:  "image/svg+xml",
	render.FormatPNG:  "image/png",
	render.FormatPDF:  "application/pdf",
	render.FormatHTML: "text/html; charset=utf-8",
	render.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	ct, ok := contentTypes[format]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

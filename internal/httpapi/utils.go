package httpapi

import (
	"encoding/json"
	"net/http"

	sharederrors "github.com/easyconstruct/chatbot-service/shared/errors"
)

type errorResponse = sharederrors.ErrorResponse

const (
	codeBadRequest         = sharederrors.CodeBadRequest
	codeServiceUnavailable = sharederrors.CodeServiceUnavailable
	codeUpstreamFailed     = sharederrors.CodeUpstreamFailed
	codeInternal           = sharederrors.CodeInternal
)

func writeError(w http.ResponseWriter, code string, message string, reply string) {
	writeJSON(w, sharederrors.ToStatusCode(code), errorResponse{Error: message, Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// The live storefront labels its JSON responses as HTML; clients must cope.
const contentType = "text/html; charset=utf-8"

// MessageResponse is the body of every response that carries no data
type MessageResponse struct {
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
}

// writeJSON always answers HTTP 200; the business outcome lives in the body
func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func sendMessage(w http.ResponseWriter, logger *zap.Logger, code int, message string) {
	writeJSON(w, logger, MessageResponse{ResponseCode: code, Message: message})
}

func sendMethodNotSupported(w http.ResponseWriter, logger *zap.Logger) {
	sendMessage(w, logger, storeapi.CodeMethodNotAllowed, storeapi.MsgMethodNotSupported)
}

// formValues reads url-encoded parameters from the query string and body.
// Unlike Request.ParseForm it also reads the body of DELETE requests.
func formValues(r *http.Request) (map[string]string, error) {
	values := url.Values{}
	for k, v := range r.URL.Query() {
		values[k] = v
	}

	if r.Body != nil && r.Method != http.MethodGet {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body, err := url.ParseQuery(string(raw))
		if err != nil {
			return nil, err
		}
		for k, v := range body {
			values[k] = v
		}
	}

	form := make(map[string]string, len(values))
	for k := range values {
		form[k] = values.Get(k)
	}
	return form, nil
}

func named(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.Named(name)
}

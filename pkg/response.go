package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%d bytes]: %s", len(message), err)
	}
}

// WriteJSONResponse marshals v and writes it with the given status code.
// A marshalling failure results in a plain 500.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response of type %T: %s", v, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respJson, statusCode)
}

func WriteJSONResponseOK(w http.ResponseWriter, v any) {
	WriteJSONResponse(w, http.StatusOK, v)
}

func IsJSONRequest(r *http.Request) bool {
	return r.Header.Get("Content-Type") == ContentType.JSON
}

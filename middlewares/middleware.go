package middlewares

import (
	"net/http"
	"strings"

	"bitbucket.org/surfagenda/backend/config"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func LoggerRequest(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		r.Header.Set("X-Request-ID", requestID)
	}
	rw.Header().Set("X-Request-ID", requestID)

	requestLogger := log.WithFields(log.Fields{"request_id": requestID, "query": r.URL.Query(), "host": r.Host, "url": r.URL.Path, "method": r.Method})
	requestLogger.Info("logger_request")
	next(rw, r.WithContext(config.WithLogger(r.Context(), requestLogger)))
}

// RequestLanguage picks the response language from Accept-Language.
func RequestLanguage(r *http.Request) string {
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Accept-Language")), Language.English) {
		return Language.English
	}
	return Language.Portuguese
}

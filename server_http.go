package intlbridge

import (
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pitabwire/intlbridge/localization"
)

const maxRequestKeyBytes = 1 << 20

// NewHTTPHandler serves a handle's request/response contract over HTTP so the
// capability can sit on the far side of a process boundary. The request key
// travels in the "key" query parameter (GET) or the request body (POST); a
// present result is a 200 with a text body, an absent one is a 404. Request
// language preferences are taken from the lang form value or the
// Accept-Language header and placed on the context for sub-APIs that resolve
// languages lazily.
func NewHTTPHandler(h Handle) http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var key string

		switch r.Method {
		case http.MethodGet:
			key = r.URL.Query().Get("key")
		case http.MethodPost:
			body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestKeyBytes))
			if err != nil {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			key = string(body)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		if languages := localization.ExtractLanguageFromHTTPRequest(r); len(languages) > 0 {
			ctx = localization.ToContext(ctx, languages)
		}

		result, ok := h.Lookup(ctx, key)
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, result)
	})

	return otelhttp.NewHandler(handler, "intlbridge.lookup")
}

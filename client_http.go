package intlbridge

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pitabwire/intlbridge/localization"
)

// HTTPHandle reaches a capability served by NewHTTPHandler on another
// process. It implements Handle with the same contract as an in-process
// host: any transport or server failure is an absent response.
type HTTPHandle struct {
	baseURL string
	client  *http.Client
}

// NewHTTPHandle creates a handle against the base URL of a bridge endpoint.
func NewHTTPHandle(baseURL string) *HTTPHandle {
	return &HTTPHandle{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (h *HTTPHandle) Lookup(ctx context.Context, key string) (string, bool) {
	endpoint := h.baseURL + "?key=" + url.QueryEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}

	if languages := localization.FromContext(ctx); len(languages) > 0 {
		req.Header.Set("Accept-Language", strings.Join(languages, ","))
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}

	return string(body), true
}

package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"
)

var ErrMissingURL = errs.New("NOTIFY_HTTP_URL is required for the http notify driver")

// HTTPNotifier POSTs each notification as JSON to a push gateway endpoint.
type HTTPNotifier struct {
	client     *http.Client
	url        string
	authHeader string
}

func NewHTTPNotifier(cfg config.NotifyConfig) (*HTTPNotifier, error) {
	if cfg.HTTPURL == "" {
		return nil, ErrMissingURL
	}
	return &HTTPNotifier{
		client:     &http.Client{Timeout: cfg.HTTPTimeout},
		url:        cfg.HTTPURL,
		authHeader: cfg.HTTPAuthHeader,
	}, nil
}

func (n *HTTPNotifier) Send(ctx context.Context, msg shared.Notification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.authHeader != "" {
		req.Header.Set("Authorization", n.authHeader)
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "post to push gateway")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode}
	}
	return nil
}

type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("push gateway returned status %d", e.Status)
}

//go:build unit

package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifier_Send(t *testing.T) {
	msg := shared.Notification{
		Token: "device-1",
		Title: "Booking Confirmed",
		Body:  "Your booking for plot A-1 is confirmed.",
		Data:  map[string]string{"type": "booking_confirmed"},
	}

	t.Run("posts json with auth header", func(t *testing.T) {
		var got shared.Notification
		var auth, contentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			contentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		n, err := NewHTTPNotifier(config.NotifyConfig{HTTPURL: srv.URL, HTTPAuthHeader: "key=secret", HTTPTimeout: time.Second})
		require.NoError(t, err)

		require.NoError(t, n.Send(context.Background(), msg))
		assert.Equal(t, msg, got)
		assert.Equal(t, "key=secret", auth)
		assert.Equal(t, "application/json", contentType)
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		n, err := NewHTTPNotifier(config.NotifyConfig{HTTPURL: srv.URL, HTTPTimeout: time.Second})
		require.NoError(t, err)

		err = n.Send(context.Background(), msg)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusServiceUnavailable, se.Status)
	})

	t.Run("unreachable gateway keeps the transport cause", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		n, err := NewHTTPNotifier(config.NotifyConfig{HTTPURL: url, HTTPTimeout: time.Second})
		require.NoError(t, err)

		err = n.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "post to push gateway")
		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewHTTPNotifier(config.NotifyConfig{})
		assert.ErrorIs(t, err, ErrMissingURL)
	})
}

func TestNew(t *testing.T) {
	n, cleanup, err := New(context.Background(), config.NotifyConfig{Driver: config.NotifyDriverNoop})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, n)
	cleanup()

	_, _, err = New(context.Background(), config.NotifyConfig{Driver: "carrier-pigeon"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
	assert.Contains(t, err.Error(), "carrier-pigeon")

	_, _, err = New(context.Background(), config.NotifyConfig{Driver: config.NotifyDriverPubSub})
	assert.ErrorIs(t, err, ErrMissingProject)
}

type recordingNotifier struct {
	sent []shared.Notification
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, n shared.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestWorker_HandlePush(t *testing.T) {
	msg := shared.Notification{Token: "tok", Title: "New Booking", Body: "b", Data: map[string]string{"type": "new_booking"}}
	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	t.Run("delivers payload", func(t *testing.T) {
		rec := &recordingNotifier{}
		w := &Worker{delivery: rec}

		require.NoError(t, w.HandlePush(context.Background(), asynq.NewTask(TypePushNotification, payload)))
		require.Len(t, rec.sent, 1)
		assert.Equal(t, msg, rec.sent[0])
	})

	t.Run("delivery failure is retried", func(t *testing.T) {
		rec := &recordingNotifier{err: errors.New("gateway down")}
		w := &Worker{delivery: rec}

		err := w.HandlePush(context.Background(), asynq.NewTask(TypePushNotification, payload))
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("garbage payload is not retried", func(t *testing.T) {
		w := &Worker{delivery: &recordingNotifier{}}

		err := w.HandlePush(context.Background(), asynq.NewTask(TypePushNotification, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

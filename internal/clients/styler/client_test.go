package styler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaturelab/creature-api/internal/errors"
)

func newTestClient(t *testing.T, style Style, handler http.Handler) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(&Config{Style: style, BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(&Config{BaseURL: "http://example.com"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = New(&Config{Style: StyleMystic})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestStyle(t *testing.T) {
	c := newTestClient(t, StyleBard, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	assert.Equal(t, StyleBard, c.Style())
}

func TestTransform_Success(t *testing.T) {
	var gotText string
	c := newTestClient(t, StyleMystic, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
		_, _ = w.Write([]byte(`{"contents": {"translated": "Colonies, it forms.", "text": "It forms colonies.", "translation": "mystic"}}`))
	}))

	out, err := c.Transform(context.Background(), "It forms colonies.")
	require.NoError(t, err)
	assert.Equal(t, "Colonies, it forms.", out)
	assert.Equal(t, "It forms colonies.", gotText)
}

func TestTransform_EncodesQueryText(t *testing.T) {
	var gotText string
	c := newTestClient(t, StyleBard, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
		_, _ = w.Write([]byte(`{"contents": {"translated": "ok"}}`))
	}))

	_, err := c.Transform(context.Background(), "a creature & its habitat? 100%")
	require.NoError(t, err)
	assert.Equal(t, "a creature & its habitat? 100%", gotText)
}

func TestTransform_EmptyInputSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, StyleMystic, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	for _, text := range []string{"", "   ", "\n"} {
		_, err := c.Transform(context.Background(), text)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestTransform_RateLimited(t *testing.T) {
	c := newTestClient(t, StyleMystic, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Too Many Requests: Rate limit of 5 requests per hour exceeded."}}`))
	}))

	_, err := c.Transform(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))
	assert.Contains(t, errors.GetMessage(err), "Rate limit of 5 requests per hour exceeded")
	assert.Equal(t, http.StatusTooManyRequests, errors.GetMeta(err)["status"])
}

func TestTransform_UpstreamFailure(t *testing.T) {
	c := newTestClient(t, StyleBard, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Transform(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, "bard", errors.GetMeta(err)["style"])
}

func TestTransform_MalformedBody(t *testing.T) {
	c := newTestClient(t, StyleBard, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>surprise</html>"))
	}))

	_, err := c.Transform(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestTransform_EmptyTranslatedIsFailure(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "empty translated", body: `{"contents": {"translated": "", "text": "x", "translation": "mystic"}}`},
		{name: "missing contents", body: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, StyleMystic, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := c.Transform(context.Background(), "some text")
			require.Error(t, err)
			assert.True(t, errors.IsInternal(err))
		})
	}
}

func TestTransform_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := New(&Config{Style: StyleMystic, BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, err = c.Transform(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestTransform_ContextCanceled(t *testing.T) {
	c := newTestClient(t, StyleMystic, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Transform(ctx, "some text")
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

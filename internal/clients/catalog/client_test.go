package catalog

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

const zubatJSON = `{"id": 41, "name": "zubat"}`

const zubatSpeciesJSON = `{
	"habitat": {"name": "cave"},
	"is_legendary": false,
	"flavor_text_entries": [
		{"flavor_text": "Formes des colonies.", "language": {"name": "fr"}},
		{"flavor_text": "Forms colonies in\nperennially dark\fplaces.", "language": {"name": "en"}},
		{"flavor_text": "Later entry.", "language": {"name": "en"}}
	]
}`

const mewtwoSpeciesJSON = `{
	"habitat": null,
	"is_legendary": true,
	"flavor_text_entries": []
}`

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(&Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c, srv
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGetCreature_Success(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(zubatJSON))
	}))

	creature, err := c.GetCreature(context.Background(), "zubat")
	require.NoError(t, err)
	assert.Equal(t, 41, creature.ID)
	assert.Equal(t, "zubat", creature.Name)
	assert.Equal(t, "/creature/zubat", gotPath)
}

func TestGetCreature_NormalizesName(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(zubatJSON))
	}))

	_, err := c.GetCreature(context.Background(), "  ZuBat ")
	require.NoError(t, err)
	assert.Equal(t, "/creature/zubat", gotPath)
}

func TestGetCreature_BlankNameSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := c.GetCreature(context.Background(), name)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetCreature_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.GetCreature(context.Background(), "doesnotexist123")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "doesnotexist123", errors.GetMeta(err)["name"])
}

func TestGetCreature_UpstreamFailure(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway},
		{name: "teapot", status: http.StatusTeapot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))

			_, err := c.GetCreature(context.Background(), "zubat")
			require.Error(t, err)
			assert.True(t, errors.IsUnavailable(err), "status %d should map to UNAVAILABLE, not NOT_FOUND", tc.status)
			assert.Equal(t, tc.status, errors.GetMeta(err)["status"])
		})
	}
}

func TestGetCreature_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := New(&Config{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, err = c.GetCreature(context.Background(), "zubat")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestGetCreature_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := c.GetCreature(context.Background(), "zubat")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestGetCreature_ContextCanceled(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetCreature(ctx, "zubat")
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err))
}

func TestGetSpecies_Success(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(zubatSpeciesJSON))
	}))

	species, err := c.GetSpecies(context.Background(), 41)
	require.NoError(t, err)
	assert.Equal(t, "/creature-species/41", gotPath)
	assert.Equal(t, "cave", species.Habitat)
	assert.False(t, species.IsRare)
	require.Len(t, species.FlavorTexts, 3)
	assert.Equal(t, "fr", species.FlavorTexts[0].Language)
	assert.Equal(t, "en", species.FlavorTexts[1].Language)
	assert.Equal(t, "Forms colonies in\nperennially dark\fplaces.", species.FlavorTexts[1].Text)
}

func TestGetSpecies_NullHabitat(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(mewtwoSpeciesJSON))
	}))

	species, err := c.GetSpecies(context.Background(), 150)
	require.NoError(t, err)
	assert.Empty(t, species.Habitat)
	assert.True(t, species.IsRare)
	assert.Empty(t, species.FlavorTexts)
}

func TestGetSpecies_InvalidID(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	for _, id := range []int{0, -1, -150} {
		_, err := c.GetSpecies(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetSpecies_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.GetSpecies(context.Background(), 99999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 99999, errors.GetMeta(err)["id"])
}

package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather/manager"
)

func newServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "London", query.Get("q"))
		assert.Equal(t, "1", query.Get("limit"))
		assert.Equal(t, "key", query.Get("appid"))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestGet(t *testing.T) {
	server := newServer(t, `[{"name":"London","lat":51.5073,"lon":-0.1276,"country":"GB"},{"name":"London","lat":42.98,"lon":-81.24}]`)

	loc, err := New(resty.New(), server.URL, "key").Get(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, manager.Location{Name: "London", Lat: 51.5073, Lon: -0.1276}, loc)
}

func TestGetNotFound(t *testing.T) {
	server := newServer(t, `[]`)

	_, err := New(resty.New(), server.URL, "key").Get(context.Background(), "London")
	assert.ErrorIs(t, err, manager.ErrLocationNotFound)
}

func TestGetMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty candidate", `[{}]`},
		{"missing name and lon", `[{"lat":51.5}]`},
		{"missing lat", `[{"name":"London","lon":-0.1276}]`},
		{"null lon", `[{"name":"London","lat":51.5,"lon":null}]`},
		{"second candidate incomplete", `[{"name":"London","lat":51.5,"lon":-0.1},{"name":"London"}]`},
		{"string lat", `[{"name":"London","lat":"51.5","lon":-0.1}]`},
		{"null body", `null`},
		{"object body", `{"cod":"400"}`},
		{"null candidate", `[null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.body)

			_, err := New(resty.New(), server.URL, "key").Get(context.Background(), "London")
			assert.ErrorIs(t, err, manager.ErrParsing)
			assert.NotErrorIs(t, err, manager.ErrLocationNotFound)
		})
	}
}

func TestGetTrailingData(t *testing.T) {
	server := newServer(t, `[{"name":"London","lat":51.5,"lon":-0.1}] trailing`)

	_, err := New(resty.New(), server.URL, "key").Get(context.Background(), "London")
	assert.Error(t, err)
}

func TestNewDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, New(resty.New(), "", "key").url)
}

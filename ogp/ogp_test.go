package ogp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<meta property="og:title" content="シナリオ『沈黙の館』">
			<meta property="og:image" content="https://cdn.example.com/cover.png">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcherWithClient(srv.Client())
	img, err := f.ImageURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.png", img)
}

func TestImageURLMissingMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>no ogp</title></head></html>`))
	}))
	defer srv.Close()

	f := NewFetcherWithClient(srv.Client())
	_, err := f.ImageURL(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestImageURLNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcherWithClient(srv.Client())
	_, err := f.ImageURL(context.Background(), srv.URL)
	assert.Error(t, err)
}

package service

import (
	"cinema_reservation/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/movie", func(w http.ResponseWriter, r *http.Request) {
		movies := []model.Movie{{MovieId: 1, Title: "Underground"}, {MovieId: 2, Title: "Balkanski spijun"}}
		if r.URL.Query().Get("genre") == "3" {
			movies = movies[:1]
		}
		_ = json.NewEncoder(w).Encode(movies)
	})
	mux.HandleFunc("/movie/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Movie{MovieId: 1, Title: "Underground", RunTime: 170})
	})
	mux.HandleFunc("/movie/runtime", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]int{95, 120, 170})
	})
	mux.HandleFunc("/genre", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Genre{{GenreId: 3, Name: "Drama"}})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCatalogGetMovies(t *testing.T) {
	srv := newCatalogTestServer(t)
	svc := NewCatalogService(srv.URL)

	movies, err := svc.GetMovies(MovieFilter{})
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	filtered, err := svc.GetMovies(MovieFilter{Genre: 3})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Underground", filtered[0].Title)
}

func TestCatalogGetMovie(t *testing.T) {
	srv := newCatalogTestServer(t)
	svc := NewCatalogService(srv.URL)

	movie, err := svc.GetMovie(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.MovieId)
	assert.Equal(t, 170, movie.RunTime)
}

func TestCatalogGetMovie_NotFound(t *testing.T) {
	srv := newCatalogTestServer(t)
	svc := NewCatalogService(srv.URL)

	_, err := svc.GetMovie(999)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestCatalogGetRuntimes(t *testing.T) {
	srv := newCatalogTestServer(t)
	svc := NewCatalogService(srv.URL)

	runtimes, err := svc.GetRuntimes()
	require.NoError(t, err)
	assert.Equal(t, []int{95, 120, 170}, runtimes)
}

func TestCatalogGetGenres(t *testing.T) {
	srv := newCatalogTestServer(t)
	svc := NewCatalogService(srv.URL)

	genres, err := svc.GetGenres()
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Drama", genres[0].Name)
}

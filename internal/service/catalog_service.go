package service

import (
	"cinema_reservation/model"
	errorHandler "cinema_reservation/pkg/error"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type MovieFilter struct {
	Search   string
	Director int64
	Actor    int64
	Genre    int64
	Runtime  int
}

// ICatalogService is the read-only pass-through to the remote movie api.
// No caching, no retry, no pagination beyond what the remote returns.
type ICatalogService interface {
	GetMovies(filter MovieFilter) ([]model.Movie, error)
	GetMovie(movieId int64) (*model.Movie, error)
	GetGenres() ([]model.Genre, error)
	GetActors() ([]model.Actor, error)
	GetDirectors() ([]model.Director, error)
	GetRuntimes() ([]int, error)
}

type CatalogService struct {
	baseUrl    string
	httpClient *http.Client
}

func NewCatalogService(baseUrl string) *CatalogService {
	return &CatalogService{
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

func (c *CatalogService) GetMovies(filter MovieFilter) ([]model.Movie, error) {
	params := url.Values{}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Director > 0 {
		params.Set("director", strconv.FormatInt(filter.Director, 10))
	}
	if filter.Actor > 0 {
		params.Set("actor", strconv.FormatInt(filter.Actor, 10))
	}
	if filter.Genre > 0 {
		params.Set("genre", strconv.FormatInt(filter.Genre, 10))
	}
	if filter.Runtime > 0 {
		params.Set("runtime", strconv.Itoa(filter.Runtime))
	}

	reqUrl := c.baseUrl + "/movie"
	if query := params.Encode(); query != "" {
		reqUrl += "?" + query
	}

	var movies []model.Movie
	err := c.getJson(reqUrl, &movies)
	return movies, err
}

func (c *CatalogService) GetMovie(movieId int64) (*model.Movie, error) {
	var movie model.Movie
	err := c.getJson(fmt.Sprintf("%s/movie/%d", c.baseUrl, movieId), &movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *CatalogService) GetGenres() ([]model.Genre, error) {
	var genres []model.Genre
	err := c.getJson(c.baseUrl+"/genre", &genres)
	return genres, err
}

func (c *CatalogService) GetActors() ([]model.Actor, error) {
	var actors []model.Actor
	err := c.getJson(c.baseUrl+"/actor", &actors)
	return actors, err
}

func (c *CatalogService) GetDirectors() ([]model.Director, error) {
	var directors []model.Director
	err := c.getJson(c.baseUrl+"/director", &directors)
	return directors, err
}

func (c *CatalogService) GetRuntimes() ([]int, error) {
	var runtimes []int
	err := c.getJson(c.baseUrl+"/movie/runtime", &runtimes)
	return runtimes, err
}

//------------------------------------------
//------------------------------------------

func (c *CatalogService) getJson(reqUrl string, out interface{}) error {
	resp, err := c.httpClient.Get(reqUrl)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on fetching catalog data: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrMovieNotFound
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("catalog responded with status %d", resp.StatusCode)
		errorMessage := fmt.Sprintf("Error on fetching catalog data: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

package handler

import (
	"cinema_reservation/internal/service"
	"cinema_reservation/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ICatalogHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovie(c *fiber.Ctx) error
	GetGenres(c *fiber.Ctx) error
	GetActors(c *fiber.Ctx) error
	GetDirectors(c *fiber.Ctx) error
	GetRuntimes(c *fiber.Ctx) error
}

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		Movies
//	@Description	movies from the remote catalog, optionally filtered.
//	@Tags			Catalog
//	@Param			search		query		string	false	"title search"
//	@Param			director	query		int		false	"directorId"
//	@Param			actor		query		int		false	"actorId"
//	@Param			genre		query		int		false	"genreId"
//	@Param			runtime		query		int		false	"runtime in minutes"
//	@Success		200			{object}	[]model.Movie
//	@Failure		500			{object}	response.ResponseErrorModel
//	@Router			/v1/movies [get]
func (m *CatalogHandler) GetMovies(c *fiber.Ctx) error {
	filter := service.MovieFilter{
		Search:   c.Query("search"),
		Director: int64(c.QueryInt("director", 0)),
		Actor:    int64(c.QueryInt("actor", 0)),
		Genre:    int64(c.QueryInt("genre", 0)),
		Runtime:  c.QueryInt("runtime", 0),
	}

	movies, err := m.catalogService.GetMovies(filter)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, movies)
}

// GetMovie godoc
//
//	@Summary		Movie
//	@Description	single movie from the remote catalog.
//	@Tags			Catalog
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.Movie
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/:movieId [get]
func (m *CatalogHandler) GetMovie(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	movie, err := m.catalogService.GetMovie(int64(movieId))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}

// GetGenres godoc
//
//	@Summary		Genres
//	@Tags			Catalog
//	@Success		200	{object}	[]model.Genre
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/genres [get]
func (m *CatalogHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := m.catalogService.GetGenres()
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, genres)
}

// GetActors godoc
//
//	@Summary		Actors
//	@Tags			Catalog
//	@Success		200	{object}	[]model.Actor
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/actors [get]
func (m *CatalogHandler) GetActors(c *fiber.Ctx) error {
	actors, err := m.catalogService.GetActors()
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, actors)
}

// GetDirectors godoc
//
//	@Summary		Directors
//	@Tags			Catalog
//	@Success		200	{object}	[]model.Director
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/directors [get]
func (m *CatalogHandler) GetDirectors(c *fiber.Ctx) error {
	directors, err := m.catalogService.GetDirectors()
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, directors)
}

// GetRuntimes godoc
//
//	@Summary		Runtimes
//	@Description	distinct runtimes of catalog movies, usable as a filter value.
//	@Tags			Catalog
//	@Success		200	{object}	[]int
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/runtimes [get]
func (m *CatalogHandler) GetRuntimes(c *fiber.Ctx) error {
	runtimes, err := m.catalogService.GetRuntimes()
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, runtimes)
}

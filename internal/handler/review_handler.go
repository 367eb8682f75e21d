package handler

import (
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"cinema_reservation/pkg/response"
	"cinema_reservation/util"

	"github.com/gofiber/fiber/v2"
)

type IReviewHandler interface {
	AddReview(c *fiber.Ctx) error
	GetMovieReviews(c *fiber.Ctx) error
	GetMovieSnapshot(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// AddReview godoc
//
//	@Summary		Add Review
//	@Description	star rating plus comment, one per user and movie.
//	@Tags			Review
//	@Param			review		body		model.AddReviewReq	true	"rating and comment"
//	@Success		201			{object}	model.Review
//	@Failure		400,401,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reviews [post]
func (m *ReviewHandler) AddReview(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.AddReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	review, err := m.reviewService.AddReview(jwtUserData.Username, &req)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseCreated(c, review)
}

// GetMovieReviews godoc
//
//	@Summary		Movie Reviews
//	@Description	reviews of a movie with the locally computed average.
//	@Tags			Review
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.MovieReviewsRes
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/movies/:movieId/reviews [get]
func (m *ReviewHandler) GetMovieReviews(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	res, err := m.reviewService.GetMovieReviews(int64(movieId))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovieSnapshot godoc
//
//	@Summary		Movie Snapshot
//	@Description	denormalized movie copy with the rating derived from local reviews.
//	@Tags			Review
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{object}	model.MovieSnapshot
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/:movieId/snapshot [get]
func (m *ReviewHandler) GetMovieSnapshot(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	snapshot, err := m.reviewService.GetMovieSnapshot(int64(movieId))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, snapshot)
}

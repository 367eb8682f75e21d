package handler

import (
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"cinema_reservation/pkg/response"
	"cinema_reservation/util"

	"github.com/gofiber/fiber/v2"
)

type IReservationHandler interface {
	GetShowings(c *fiber.Ctx) error
	AddReservation(c *fiber.Ctx) error
	GetReservations(c *fiber.Ctx) error
	SetQuantity(c *fiber.Ctx) error
	CancelReservation(c *fiber.Ctx) error
	MarkViewed(c *fiber.Ctx) error
	PayReservations(c *fiber.Ctx) error
	DeleteReservation(c *fiber.Ctx) error
}

type ReservationHandler struct {
	reservationService service.IReservationService
}

func NewReservationHandler(reservationService service.IReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

//------------------------------------------
//------------------------------------------

// GetShowings godoc
//
//	@Summary		Movie Showings
//	@Description	synthetic screening slots for a movie.
//	@Tags			Reservation
//	@Param			movieId	path		int	true	"movieId"
//	@Success		200		{array}		model.Showing
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movies/:movieId/showings [get]
func (m *ReservationHandler) GetShowings(c *fiber.Ctx) error {
	movieId, err := c.ParamsInt("movieId", 0)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	showings, err := m.reservationService.GetShowings(int64(movieId))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, showings)
}

// AddReservation godoc
//
//	@Summary		Add Reservation
//	@Description	add a showing to the cart, merges quantity into the existing unpaid row for the same showing.
//	@Tags			Reservation
//	@Param			reservation	body		model.AddReservationReq	true	"movie and showing"
//	@Success		201			{object}	model.Reservation
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations [post]
func (m *ReservationHandler) AddReservation(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.AddReservationReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.MovieId < 1 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	reservation, err := m.reservationService.AddReservation(jwtUserData.Username, &req)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseCreated(c, reservation)
}

// GetReservations godoc
//
//	@Summary		Reservations
//	@Description	the user's ledger split into unpaid, paid and canceled views, newest first.
//	@Tags			Reservation
//	@Success		200	{object}	model.ReservationsRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations [get]
func (m *ReservationHandler) GetReservations(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	res, err := m.reservationService.GetReservations(jwtUserData.Username)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// SetQuantity godoc
//
//	@Summary		Set Quantity
//	@Description	overwrite the ticket count of a reservation, rejects values below 1.
//	@Tags			Reservation
//	@Param			id			path		int						true	"reservation id"
//	@Param			quantity	body		model.SetQuantityReq	true	"new quantity"
//	@Success		200			{object}	model.Reservation
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations/quantity/:id [put]
func (m *ReservationHandler) SetQuantity(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	id, err := c.ParamsInt("id", 0)
	if err != nil || id < 1 {
		return response.ResponseError(c, "Invalid reservation id", fiber.StatusBadRequest)
	}
	var req model.SetQuantityReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	reservation, err := m.reservationService.SetQuantity(jwtUserData.Username, int64(id), req.Quantity)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, reservation)
}

// CancelReservation godoc
//
//	@Summary		Cancel Reservation
//	@Description	flip a reservation to canceled, the row is kept.
//	@Tags			Reservation
//	@Param			id			path		int	true	"reservation id"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations/cancel/:id [put]
func (m *ReservationHandler) CancelReservation(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	id, err := c.ParamsInt("id", 0)
	if err != nil || id < 1 {
		return response.ResponseError(c, "Invalid reservation id", fiber.StatusBadRequest)
	}

	err = m.reservationService.CancelReservation(jwtUserData.Username, int64(id))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOK(c, "")
}

// MarkViewed godoc
//
//	@Summary		Mark Viewed
//	@Description	mark a paid reservation as viewed.
//	@Tags			Reservation
//	@Param			id			path		int	true	"reservation id"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations/viewed/:id [put]
func (m *ReservationHandler) MarkViewed(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	id, err := c.ParamsInt("id", 0)
	if err != nil || id < 1 {
		return response.ResponseError(c, "Invalid reservation id", fiber.StatusBadRequest)
	}

	err = m.reservationService.MarkViewed(jwtUserData.Username, int64(id))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOK(c, "")
}

// PayReservations godoc
//
//	@Summary		Pay Reservations
//	@Description	mark every non-canceled unpaid reservation of the user as paid, one sweep.
//	@Tags			Reservation
//	@Success		200		{object}	model.PayRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations/pay [put]
func (m *ReservationHandler) PayReservations(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	res, err := m.reservationService.PayReservations(jwtUserData.Username)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteReservation godoc
//
//	@Summary		Delete Reservation
//	@Description	remove a reservation, paid ones only after they were viewed.
//	@Tags			Reservation
//	@Param			id			path		int	true	"reservation id"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/reservations/:id [delete]
func (m *ReservationHandler) DeleteReservation(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	id, err := c.ParamsInt("id", 0)
	if err != nil || id < 1 {
		return response.ResponseError(c, "Invalid reservation id", fiber.StatusBadRequest)
	}

	err = m.reservationService.DeleteReservation(jwtUserData.Username, int64(id))
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOK(c, "")
}

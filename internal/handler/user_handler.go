package handler

import (
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"cinema_reservation/pkg/response"
	"cinema_reservation/util"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	register a new user, username must be unique.
//	@Tags			User-Auth
//	@Param			user	body		model.RegisterRequest	true	"registration fields"
//	@Success		201		{object}	model.User
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/signup [post]
func (m *UserHandler) Signup(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, err := m.userService.Register(&req)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseCreated(c, user)
}

// Login godoc
//
//	@Summary		Login
//	@Description	exchange a credential pair for an access/refresh token pair.
//	@Tags			User-Auth
//	@Param			user	body		model.LoginRequest	true	"credentials"
//	@Success		200		{object}	model.LoginResult
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/v1/auth/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.Username == "" || req.Password == "" {
		return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
	}

	result, err := m.userService.Login(&req)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, result)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	blacklist the presented refresh token.
//	@Tags			User-Auth
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [put]
func (m *UserHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Locals("refreshToken").(string)
	refreshExpiresAt := c.Locals("refreshExpiresAt").(int64)

	err := m.userService.Logout(refreshToken, refreshExpiresAt)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOK(c, "")
}

// GetProfile godoc
//
//	@Summary		Get Profile
//	@Description	profile of the authenticated user.
//	@Tags			User-Profile
//	@Success		200		{object}	model.User
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profile [get]
func (m *UserHandler) GetProfile(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	user, err := m.userService.GetProfile(jwtUserData.Username)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, user)
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	replace the whole profile of the authenticated user.
//	@Tags			User-Profile
//	@Param			user		body		model.UpdateProfileRequest	true	"profile fields"
//	@Success		200			{object}	model.User
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profile [put]
func (m *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, err := m.userService.UpdateProfile(jwtUserData.Username, &req)
	if err != nil {
		return sendError(c, err)
	}
	return response.ResponseOKWithData(c, user)
}

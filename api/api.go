package api

import (
	"cinema_reservation/api/middleware"
	"cinema_reservation/configs"
	_ "cinema_reservation/docs"
	"cinema_reservation/internal/handler"
	"cinema_reservation/pkg/response"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(
	userHandler *handler.UserHandler,
	reservationHandler *handler.ReservationHandler,
	reviewHandler *handler.ReviewHandler,
	catalogHandler *handler.CatalogHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		// Set Content-Type: text/plain; charset=utf-8
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	// router.Use(logger.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	authRoutes := router.Group("v1/auth")
	{
		authRoutes.Post("/signup", userHandler.Signup)
		authRoutes.Post("/login", userHandler.Login)
		authRoutes.Put("/logout", middleware.AuthMiddleware, userHandler.Logout)
	}

	userRoutes := router.Group("v1/user", middleware.AuthMiddleware)
	{
		userRoutes.Get("/profile", userHandler.GetProfile)
		userRoutes.Put("/profile", userHandler.UpdateProfile)
	}

	movieRoutes := router.Group("v1/movies")
	{
		movieRoutes.Get("/", catalogHandler.GetMovies)
		// registered before :movieId so it is not swallowed by the param route
		movieRoutes.Get("/runtimes", catalogHandler.GetRuntimes)
		movieRoutes.Get("/:movieId", catalogHandler.GetMovie)
		movieRoutes.Get("/:movieId/showings", reservationHandler.GetShowings)
		movieRoutes.Get("/:movieId/reviews", reviewHandler.GetMovieReviews)
		movieRoutes.Get("/:movieId/snapshot", reviewHandler.GetMovieSnapshot)
	}

	router.Get("v1/genres", catalogHandler.GetGenres)
	router.Get("v1/actors", catalogHandler.GetActors)
	router.Get("v1/directors", catalogHandler.GetDirectors)

	reservationRoutes := router.Group("v1/reservations", middleware.AuthMiddleware)
	{
		reservationRoutes.Get("/", reservationHandler.GetReservations)
		reservationRoutes.Post("/", reservationHandler.AddReservation)
		reservationRoutes.Put("/quantity/:id", reservationHandler.SetQuantity)
		reservationRoutes.Put("/cancel/:id", reservationHandler.CancelReservation)
		reservationRoutes.Put("/viewed/:id", reservationHandler.MarkViewed)
		reservationRoutes.Put("/pay", reservationHandler.PayReservations)
		reservationRoutes.Delete("/:id", reservationHandler.DeleteReservation)
	}

	reviewRoutes := router.Group("v1/reviews", middleware.AuthMiddleware)
	{
		reviewRoutes.Post("/", reviewHandler.AddReview)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {

				// write response and abort the request
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}

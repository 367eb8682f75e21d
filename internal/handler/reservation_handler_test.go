package handler

import (
	"bytes"
	"cinema_reservation/internal/service"
	"cinema_reservation/model"
	"cinema_reservation/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//------------------------------------------
//------------------------------------------

type fakeReservationService struct {
	showings    []model.Showing
	reservation *model.Reservation
	err         error
}

func (f *fakeReservationService) GetShowings(movieId int64) ([]model.Showing, error) {
	return f.showings, f.err
}

func (f *fakeReservationService) AddReservation(username string, req *model.AddReservationReq) (*model.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.reservation
	r.Username = username
	return &r, nil
}

func (f *fakeReservationService) GetReservations(username string) (*model.ReservationsRes, error) {
	return &model.ReservationsRes{}, f.err
}

func (f *fakeReservationService) SetQuantity(username string, id int64, quantity int) (*model.Reservation, error) {
	return f.reservation, f.err
}

func (f *fakeReservationService) CancelReservation(username string, id int64) error { return f.err }
func (f *fakeReservationService) MarkViewed(username string, id int64) error        { return f.err }
func (f *fakeReservationService) PayReservations(username string) (*model.PayRes, error) {
	return &model.PayRes{TransactionId: "tx-1", PaidCount: 2}, f.err
}
func (f *fakeReservationService) DeleteReservation(username string, id int64) error { return f.err }

var _ service.IReservationService = (*fakeReservationService)(nil)

// fakeAuth stands in for the jwt middleware on protected routes.
func fakeAuth(username string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("jwtUserData", &util.MyJwtClaims{UserId: 1, Username: username})
		return c.Next()
	}
}

func newTestApp(svc service.IReservationService) *fiber.App {
	h := NewReservationHandler(svc)
	app := fiber.New()
	app.Get("/v1/movies/:movieId/showings", h.GetShowings)
	app.Post("/v1/reservations", fakeAuth("pera"), h.AddReservation)
	app.Put("/v1/reservations/pay", fakeAuth("pera"), h.PayReservations)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetShowingsRoute(t *testing.T) {
	svc := &fakeReservationService{
		showings: []model.Showing{{ShowingId: 0, Time: "14:00", Price: 1200, Cinema: "Bioskop Filmadzija"}},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/movies/42/showings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, float64(200), body["code"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "14:00", data[0].(map[string]interface{})["time"])
}

func TestGetShowingsRoute_BadMovieId(t *testing.T) {
	app := newTestApp(&fakeReservationService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/movies/abc/showings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetShowingsRoute_MovieNotFound(t *testing.T) {
	app := newTestApp(&fakeReservationService{err: model.ErrMovieNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/movies/42/showings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, model.ErrMovieNotFound.Error(), body["errorMessage"])
}

func TestAddReservationRoute(t *testing.T) {
	svc := &fakeReservationService{
		reservation: &model.Reservation{Id: 1, ShowingId: 0, Quantity: 1, Status: model.ReservationStatusReserved},
	}
	app := newTestApp(svc)

	payload, _ := json.Marshal(model.AddReservationReq{MovieId: 42, ShowingId: 0})
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pera", data["username"])
	assert.Equal(t, model.ReservationStatusReserved, data["status"])
}

func TestAddReservationRoute_BadBody(t *testing.T) {
	app := newTestApp(&fakeReservationService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewReader([]byte(`{"movieId":0}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPayReservationsRoute(t *testing.T) {
	app := newTestApp(&fakeReservationService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/v1/reservations/pay", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "tx-1", data["transactionId"])
	assert.Equal(t, float64(2), data["paidCount"])
}

func TestPayReservationsRoute_NothingToPay(t *testing.T) {
	app := newTestApp(&fakeReservationService{err: model.ErrNothingToPay})

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/v1/reservations/pay", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

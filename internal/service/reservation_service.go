package service

import (
	"cinema_reservation/configs"
	"cinema_reservation/internal/repository"
	"cinema_reservation/model"
	errorHandler "cinema_reservation/pkg/error"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type IReservationService interface {
	GetShowings(movieId int64) ([]model.Showing, error)
	AddReservation(username string, req *model.AddReservationReq) (*model.Reservation, error)
	GetReservations(username string) (*model.ReservationsRes, error)
	SetQuantity(username string, id int64, quantity int) (*model.Reservation, error)
	CancelReservation(username string, id int64) error
	MarkViewed(username string, id int64) error
	PayReservations(username string) (*model.PayRes, error)
	DeleteReservation(username string, id int64) error
}

type ReservationService struct {
	reservationRepo repository.IReservationRepository
	movieRepo       repository.IMovieRepository
	catalogSvc      ICatalogService
	events          IEventsService
}

func NewReservationService(
	reservationRepo repository.IReservationRepository,
	movieRepo repository.IMovieRepository,
	catalogSvc ICatalogService,
	events IEventsService,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		movieRepo:       movieRepo,
		catalogSvc:      catalogSvc,
		events:          events,
	}
}

//------------------------------------------
//------------------------------------------

// GetShowings fabricates the screening slots for a movie. Showings never
// come from the catalog, they are synthesized from the movie premiere date
// and the dynamic configs.
func (s *ReservationService) GetShowings(movieId int64) ([]model.Showing, error) {
	movie, err := s.catalogSvc.GetMovie(movieId)
	if err != nil {
		return nil, err
	}

	dbconfig := configs.GetDbConfigs()
	snapshot := model.NewMovieSnapshot(movie)
	showings := make([]model.Showing, 0, len(dbconfig.ShowingTimes))
	for i, showTime := range dbconfig.ShowingTimes {
		seats := 0
		if len(dbconfig.ShowingSeats) > 0 {
			seats = dbconfig.ShowingSeats[i%len(dbconfig.ShowingSeats)]
		}
		showings = append(showings, model.Showing{
			ShowingId:      i,
			Date:           movie.StartDate,
			Time:           showTime,
			Price:          dbconfig.ShowingTicketPrice,
			Cinema:         dbconfig.ShowingCinema,
			AvailableSeats: seats,
			Movie:          snapshot,
		})
	}
	return showings, nil
}

// AddReservation merges into the existing unpaid row for the same showing
// when one exists, otherwise it appends a fresh one. At most one unpaid
// reservation per (user, showing, date, time, cinema) can exist.
func (s *ReservationService) AddReservation(username string, req *model.AddReservationReq) (*model.Reservation, error) {
	if configs.GetDbConfigs().DisableReservations {
		return nil, model.ErrReservationsDisabled
	}

	showings, err := s.GetShowings(req.MovieId)
	if err != nil {
		return nil, err
	}
	if req.ShowingId < 0 || req.ShowingId >= len(showings) {
		return nil, model.ErrShowingNotFound
	}
	showing := showings[req.ShowingId]

	existing, err := s.reservationRepo.FindUnpaidMatch(username, showing.ShowingId, showing.Date, showing.Time, showing.Cinema)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.reservationRepo.IncrementQuantity(existing.Id); err != nil {
			return nil, err
		}
		return s.reservationRepo.GetReservation(existing.Id, username)
	}

	reservation := &model.Reservation{
		ShowingId:      showing.ShowingId,
		Username:       username,
		Date:           showing.Date,
		Time:           showing.Time,
		Price:          showing.Price,
		Cinema:         showing.Cinema,
		Quantity:       1,
		Paid:           false,
		Status:         model.ReservationStatusReserved,
		AvailableSeats: showing.AvailableSeats,
		Movie:          showing.Movie,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.reservationRepo.CreateReservation(reservation); err != nil {
		return nil, err
	}

	// snapshot write is best effort, the reservation row already carries
	// its own denormalized copy
	if err := s.movieRepo.UpsertMovieSnapshot(&showing.Movie); err != nil {
		errorMessage := fmt.Sprintf("Error on saving movie snapshot: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}

	return reservation, nil
}

func (s *ReservationService) GetReservations(username string) (*model.ReservationsRes, error) {
	all, err := s.reservationRepo.GetUserReservations(username)
	if err != nil {
		return nil, err
	}

	res := &model.ReservationsRes{
		Reservations:         []model.Reservation{},
		PaidReservations:     []model.Reservation{},
		CanceledReservations: []model.Reservation{},
	}
	for _, r := range all {
		switch {
		case r.Status == model.ReservationStatusCanceled:
			res.CanceledReservations = append(res.CanceledReservations, r)
		case r.Paid:
			res.PaidReservations = append(res.PaidReservations, r)
		default:
			res.Reservations = append(res.Reservations, r)
		}
	}
	return res, nil
}

func (s *ReservationService) SetQuantity(username string, id int64, quantity int) (*model.Reservation, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	reservation, err := s.reservationRepo.GetReservation(id, username)
	if err != nil {
		return nil, err
	}
	if reservation.Status == model.ReservationStatusCanceled {
		return nil, model.ErrReservationCanceled
	}

	if err := s.reservationRepo.UpdateQuantity(reservation.Id, quantity); err != nil {
		return nil, err
	}
	reservation.Quantity = quantity
	return reservation, nil
}

// CancelReservation keeps the row, it just flips the status. Seats were
// never decremented on booking so there is nothing to give back.
func (s *ReservationService) CancelReservation(username string, id int64) error {
	reservation, err := s.reservationRepo.GetReservation(id, username)
	if err != nil {
		return err
	}
	if reservation.Status == model.ReservationStatusCanceled {
		return nil
	}
	return s.reservationRepo.UpdateStatus(reservation.Id, model.ReservationStatusCanceled)
}

func (s *ReservationService) MarkViewed(username string, id int64) error {
	reservation, err := s.reservationRepo.GetReservation(id, username)
	if err != nil {
		return err
	}
	if reservation.Status == model.ReservationStatusCanceled {
		return model.ErrReservationCanceled
	}
	if !reservation.Paid {
		return model.ErrReservationNotPaid
	}
	return s.reservationRepo.UpdateStatus(reservation.Id, model.ReservationStatusViewed)
}

// PayReservations marks every non-canceled unpaid reservation of the user
// as paid in one sweep.
func (s *ReservationService) PayReservations(username string) (*model.PayRes, error) {
	paidCount, err := s.reservationRepo.MarkAllUnpaidAsPaid(username)
	if err != nil {
		return nil, err
	}
	if paidCount == 0 {
		return nil, model.ErrNothingToPay
	}

	transactionId := uuid.NewString()
	s.events.PublishReservationsPaid(username, transactionId, paidCount)

	return &model.PayRes{
		TransactionId: transactionId,
		PaidCount:     paidCount,
	}, nil
}

// DeleteReservation removes the row outright. Paid tickets can only go
// after they were viewed, unpaid ones go freely.
func (s *ReservationService) DeleteReservation(username string, id int64) error {
	reservation, err := s.reservationRepo.GetReservation(id, username)
	if err != nil {
		return err
	}
	if reservation.Paid && reservation.Status != model.ReservationStatusViewed {
		return model.ErrReservationNotViewed
	}
	return s.reservationRepo.DeleteReservation(reservation.Id)
}

package model

import (
	"errors"
	"slices"
	"time"
)

const (
	ReservationStatusReserved = "Rezervisano"
	ReservationStatusCanceled = "Otkazano"
	ReservationStatusViewed   = "Gledano"
)

type Reservation struct {
	Id             int64         `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"id"`
	ShowingId      int           `gorm:"column:showingId;type:integer;not null;" json:"showingId"`
	Username       string        `gorm:"column:username;type:text;not null;index:Reservation_username_idx;" json:"username"`
	Date           string        `gorm:"column:date;type:text;not null;" json:"date"`
	Time           string        `gorm:"column:time;type:text;not null;" json:"time"`
	Price          int           `gorm:"column:price;type:integer;not null;" json:"price"`
	Cinema         string        `gorm:"column:cinema;type:text;not null;" json:"cinema"`
	Quantity       int           `gorm:"column:quantity;type:integer;not null;" json:"quantity"`
	Paid           bool          `gorm:"column:paid;type:boolean;not null;default:false;" json:"paid"`
	Status         string        `gorm:"column:status;type:text;not null;default:'Rezervisano';" json:"status"`
	AvailableSeats int           `gorm:"column:availableSeats;type:integer;not null;" json:"availableSeats"`
	Movie          MovieSnapshot `gorm:"column:movie;type:jsonb;serializer:json;" json:"movie"`
	CreatedAt      time.Time     `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Reservation) TableName() string {
	return "Reservation"
}

//---------------------------------------
//---------------------------------------

type AddReservationReq struct {
	MovieId   int64 `json:"movieId"`
	ShowingId int   `json:"showingId"`
}

type SetQuantityReq struct {
	Quantity int `json:"quantity"`
}

// ReservationsRes groups a user's ledger the way the storefront renders it:
// unpaid cart items, paid tickets, canceled ones.
type ReservationsRes struct {
	Reservations         []Reservation `json:"reservations"`
	PaidReservations     []Reservation `json:"paidReservations"`
	CanceledReservations []Reservation `json:"canceledReservations"`
}

type PayRes struct {
	TransactionId string `json:"transactionId"`
	PaidCount     int64  `json:"paidCount"`
}

//---------------------------------------
//---------------------------------------

var ErrUserNotFound = errors.New("cannot find user")
var ErrUsernameAlreadyExist = errors.New("this username already exists")
var ErrUserPassNotMatch = errors.New("username and password do not match")
var ErrMovieNotFound = errors.New("movie not found")
var ErrShowingNotFound = errors.New("showing not found")
var ErrReservationNotFound = errors.New("reservation not found")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrReservationCanceled = errors.New("reservation is canceled")
var ErrReservationNotPaid = errors.New("reservation is not paid")
var ErrReservationNotViewed = errors.New("paid reservation can only be deleted after viewing")
var ErrNothingToPay = errors.New("no payable reservations")
var ErrAlreadyReviewed = errors.New("movie already reviewed by this user")
var ErrReservationsDisabled = errors.New("reservations are disabled")
var ErrReviewsDisabled = errors.New("reviews are disabled")

func GetErrorCode(err error) int {
	code400 := []error{
		ErrInvalidQuantity,
		ErrReservationCanceled,
		ErrReservationNotPaid,
		ErrNothingToPay,
	}
	code403 := []error{
		ErrReservationNotViewed,
		ErrReservationsDisabled,
		ErrReviewsDisabled,
	}
	code404 := []error{
		ErrUserNotFound,
		ErrMovieNotFound,
		ErrShowingNotFound,
		ErrReservationNotFound,
	}
	code409 := []error{
		ErrUsernameAlreadyExist,
		ErrAlreadyReviewed,
	}
	code401 := []error{
		ErrUserPassNotMatch,
	}

	if slices.Contains(code400, err) {
		return 400
	}
	if slices.Contains(code401, err) {
		return 401
	}
	if slices.Contains(code403, err) {
		return 403
	}
	if slices.Contains(code404, err) {
		return 404
	}
	if slices.Contains(code409, err) {
		return 409
	}

	return 0
}

package repository

import (
	"cinema_reservation/model"
	"errors"

	"gorm.io/gorm"
)

type IReservationRepository interface {
	GetUserReservations(username string) ([]model.Reservation, error)
	GetReservation(id int64, username string) (*model.Reservation, error)
	FindUnpaidMatch(username string, showingId int, date string, time string, cinema string) (*model.Reservation, error)
	CreateReservation(reservation *model.Reservation) error
	IncrementQuantity(id int64) error
	UpdateQuantity(id int64, quantity int) error
	UpdateStatus(id int64, status string) error
	MarkAllUnpaidAsPaid(username string) (int64, error)
	DeleteReservation(id int64) error
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *ReservationRepository) GetUserReservations(username string) ([]model.Reservation, error) {
	var result []model.Reservation
	err := r.db.
		Model(&model.Reservation{}).
		Where("username = ?", username).
		Order("\"createdAt\" DESC, id DESC").
		Find(&result).
		Error
	return result, err
}

func (r *ReservationRepository) GetReservation(id int64, username string) (*model.Reservation, error) {
	var result model.Reservation
	err := r.db.
		Model(&model.Reservation{}).
		Where("id = ? AND username = ?", id, username).
		First(&result).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrReservationNotFound
		}
		return nil, err
	}
	return &result, nil
}

// FindUnpaidMatch looks up the one unpaid, still reserved row for this
// (user, showing, date, time, cinema) combination. At most one such row
// exists, the service merges quantity into it instead of inserting twice.
func (r *ReservationRepository) FindUnpaidMatch(username string, showingId int, date string, time string, cinema string) (*model.Reservation, error) {
	var result model.Reservation
	err := r.db.
		Model(&model.Reservation{}).
		Where("username = ? AND \"showingId\" = ? AND date = ? AND time = ? AND cinema = ? AND paid = false AND status = ?",
			username, showingId, date, time, cinema, model.ReservationStatusReserved).
		First(&result).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *ReservationRepository) CreateReservation(reservation *model.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *ReservationRepository) IncrementQuantity(id int64) error {
	return r.db.Model(&model.Reservation{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + 1")).
		Error
}

func (r *ReservationRepository) UpdateQuantity(id int64, quantity int) error {
	result := r.db.Model(&model.Reservation{}).
		Where("id = ?", id).
		UpdateColumn("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(id int64, status string) error {
	result := r.db.Model(&model.Reservation{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

// MarkAllUnpaidAsPaid is the pay sweep, one statement so the ledger can
// never be left half paid. Canceled rows are not touched.
func (r *ReservationRepository) MarkAllUnpaidAsPaid(username string) (int64, error) {
	result := r.db.Model(&model.Reservation{}).
		Where("username = ? AND paid = false AND status <> ?", username, model.ReservationStatusCanceled).
		UpdateColumn("paid", true)
	return result.RowsAffected, result.Error
}

func (r *ReservationRepository) DeleteReservation(id int64) error {
	result := r.db.
		Where("id = ?", id).
		Delete(&model.Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

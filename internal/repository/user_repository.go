package repository

import (
	"cinema_reservation/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

type IUserRepository interface {
	GetUserByUsername(username string) (*model.User, error)
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var result model.User
	err := r.db.
		Model(&model.User{}).
		Where("username = ?", username).
		First(&result).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) CreateUser(user *model.User) error {
	err := r.db.Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrUsernameAlreadyExist
	}
	return err
}

// UpdateUser replaces the whole profile row matched by username.
func (r *UserRepository) UpdateUser(user *model.User) error {
	result := r.db.Model(&model.User{}).
		Where("username = ?", user.Username).
		Select("Password", "Email", "Name", "LastName", "Address", "Phone", "Genres", "UpdatedAt").
		Updates(model.User{
			Password:  user.Password,
			Email:     user.Email,
			Name:      user.Name,
			LastName:  user.LastName,
			Address:   user.Address,
			Phone:     user.Phone,
			Genres:    user.Genres,
			UpdatedAt: time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

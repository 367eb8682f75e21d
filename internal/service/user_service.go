package service

import (
	"cinema_reservation/internal/repository"
	"cinema_reservation/model"
	"cinema_reservation/util"
	"errors"
	"time"
)

type IUserService interface {
	Register(req *model.RegisterRequest) (*model.User, error)
	Login(req *model.LoginRequest) (*model.LoginResult, error)
	Logout(refreshToken string, expiresAt int64) error
	GetProfile(username string) (*model.User, error)
	UpdateProfile(username string, req *model.UpdateProfileRequest) (*model.User, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Register(req *model.RegisterRequest) (*model.User, error) {
	if errs := validateRegister(req); errs != nil {
		return nil, errs
	}

	_, err := s.userRepo.GetUserByUsername(req.Username)
	if err == nil {
		return nil, model.ErrUsernameAlreadyExist
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Password:  hashedPassword,
		Email:     req.Email,
		Name:      req.Name,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
		Genres:    req.Genres,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	// the unique index backstops the lookup above against a concurrent register
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login issues a token pair on a matching credential pair. Unknown user and
// wrong password both come back as the same generic mismatch error.
func (s *UserService) Login(req *model.LoginRequest) (*model.LoginResult, error) {
	user, err := s.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUserPassNotMatch
		}
		return nil, err
	}

	if !util.CheckPasswordHash(req.Password, user.Password) {
		return nil, model.ErrUserPassNotMatch
	}

	tokens, err := util.CreateTokens(user.Id, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		Username:     user.Username,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	}, nil
}

// Logout blacklists the refresh token for its remaining lifetime.
func (s *UserService) Logout(refreshToken string, expiresAt int64) error {
	remaining := time.Until(time.Unix(expiresAt, 0))
	if remaining <= 0 {
		return nil
	}
	return SetJwtDataCache(refreshToken, "logout", remaining)
}

func (s *UserService) GetProfile(username string) (*model.User, error) {
	return s.userRepo.GetUserByUsername(username)
}

func (s *UserService) UpdateProfile(username string, req *model.UpdateProfileRequest) (*model.User, error) {
	if errs := validateProfile(req); errs != nil {
		return nil, errs
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Address:  req.Address,
		Phone:    req.Phone,
		Genres:   req.Genres,
	}
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByUsername(username)
}

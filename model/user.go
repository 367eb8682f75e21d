package model

import "time"

type User struct {
	Id        int64     `gorm:"column:id;type:serial;autoIncrement;primaryKey;" json:"id"`
	Username  string    `gorm:"column:username;type:text;not null;uniqueIndex:User_username_key;" json:"username"`
	Password  string    `gorm:"column:password;type:text;not null;" json:"-"`
	Email     string    `gorm:"column:email;type:text;not null;" json:"email"`
	Name      string    `gorm:"column:name;type:text;not null;" json:"name"`
	LastName  string    `gorm:"column:lastName;type:text;not null;" json:"lastName"`
	Address   string    `gorm:"column:address;type:text;not null;" json:"address"`
	Phone     string    `gorm:"column:phone;type:text;not null;" json:"phone"`
	Genres    []string  `gorm:"column:genres;type:jsonb;serializer:json;" json:"genre"`
	CreatedAt time.Time `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;type:timestamp(3);not null;" json:"updatedAt"`
}

func (User) TableName() string {
	return "User"
}

//------------------------------------------
//------------------------------------------

type RegisterRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Genres   []string `json:"genre"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	LastName string   `json:"lastName"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Genres   []string `json:"genre"`
}

type LoginResult struct {
	Username     string `json:"username"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

package users

import (
	"errors"
	"net/http"
	"regexp"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("user already exists")
	ErrNotProfileOwner        = errors.New("you can only modify your own profile")
	ErrSelfFollow             = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing       = errors.New("already following this user")
	ErrNotFollowing           = errors.New("not following this user")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:           http.StatusNotFound,
	ErrEmailAlreadyRegistered: http.StatusBadRequest,
	ErrNotProfileOwner:        http.StatusForbidden,
	ErrSelfFollow:             http.StatusBadRequest,
	ErrAlreadyFollowing:       http.StatusConflict,
	ErrNotFollowing:           http.StatusBadRequest,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

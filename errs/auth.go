package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
	Forbidden    = NewApiErr(http.StatusForbidden, "forbidden")
)

// Authentication & Authorization Errors
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("expired session")
)

func NewDuplicateEmail(email string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateEmail,
		Details:    "User already present, Please login",
		Field:      "email",
		Cause:      fmt.Errorf("email %q taken", email),
	}
}

func NewUserNotFound() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrUserNotFound,
		Details:    "User not found, please register first",
		Field:      "email",
	}
}

func NewWrongPassword() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrWrongPassword,
		Details:    "Wrong password, please try again",
		Field:      "password",
	}
}

func NewInvalidSessionError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidSession,
	}
}

func IsDuplicateEmail(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

func IsWrongPassword(err error) bool {
	return errors.Is(err, ErrWrongPassword)
}

package errs

import (
	"errors"
	"net/http"
)

// External service errors
var (
	ErrEmailDelivery = errors.New("email delivery failed")
)

func NewEmailDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmailDelivery,
		Details:    "The contact message could not be delivered",
		Cause:      cause,
	}
}

package foodrequest

import "errors"

// Food request domain errors
var (
	ErrDisabled         = errors.New("food requests are currently disabled")
	ErrAlreadyRequested = errors.New("you have already submitted a food request today")
)

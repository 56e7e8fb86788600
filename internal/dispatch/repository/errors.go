package repository

import "errors"

var (
	ErrFailedToList  = errors.New("failed to list vendors")
	ErrFailedToClaim = errors.New("failed to claim request")
)

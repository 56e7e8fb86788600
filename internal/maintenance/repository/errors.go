package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert request")
	ErrFailedToGet    = errors.New("failed to get request")
)

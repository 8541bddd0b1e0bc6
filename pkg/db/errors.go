// pkg/db/errors.go

package db

import "errors"

var (
	ErrFailedToClean   = errors.New("failed to clean")
	ErrFailedToBeginTx = errors.New("failed to begin transaction")
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToInit    = errors.New("failed to initialize schema")
	ErrFailedOpenDB    = errors.New("failed to open database")
)

package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrTransferFailed means the transfer tool exited with failure status
	ErrTransferFailed = goerr.New("dataset transfer failed")

	// ErrArchiveNotFound means the transfer tool succeeded but the expected archive is absent
	ErrArchiveNotFound = goerr.New("dataset archive not found")

	ErrExtractionFault = goerr.New("failed to extract dataset archive")
)

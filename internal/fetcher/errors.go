package fetcher

import "errors"

var (
	// ErrUnknownAccount is returned when no credentials are configured for a feed account.
	ErrUnknownAccount = errors.New("unknown feed account")
	// ErrEmptyArchive is returned when a zip feed doesn't contain any file.
	ErrEmptyArchive = errors.New("feed archive is empty")
)

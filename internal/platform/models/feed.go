package models

import (
	"io"
	"time"
)

// Feed is a feed file downloaded from the feed server.
// Body is already decompressed and must be closed by the caller.
type Feed struct {
	Name       string
	Size       int64
	ModifiedAt time.Time
	Body       io.ReadCloser
}

package ports

import (
	"context"
	"io"
)

// Fetcher retrieves a remote resource and copies its body into w.
// It returns the number of bytes written.
type Fetcher interface {
	Fetch(ctx context.Context, url string, w io.Writer) (int64, error)
}

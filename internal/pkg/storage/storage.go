package storage

import (
	"context"
	"io"
)

// FileStorage is the evidence blob sink. This service only ever adds
// evidence; reads go over HTTP (the router serves the upload directory)
// and orphan cleanup is an out-of-band job, so neither needs a method
// here.
type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
}

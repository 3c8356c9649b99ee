// Package blobstore stores uploaded files outside the database. Records
// only keep the returned key.
package blobstore

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("blobstore: object not found")

type Object struct {
	Key          string
	OriginalName string
	Size         int64
	MimeType     string
}

//go:generate mockgen -destination=mock/blobstore_mock.go -package=mock . Store
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

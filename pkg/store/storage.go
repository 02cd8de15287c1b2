package store

import (
	"context"
	"errors"
)

var (
	// ErrGraphNotFound is returned when no graph is stored under a key.
	ErrGraphNotFound = errors.New("graph not found")
	// ErrCorruptGraph is returned when stored graph data cannot be decoded.
	ErrCorruptGraph = errors.New("corrupt graph data")
)

// GraphStorage defines the interface for persisting an encoded knowledge
// graph. Backends store opaque blobs under a key; encoding and decoding is
// done by SaveSnapshot and LoadSnapshot.
//
// LoadGraph must return an error wrapping ErrGraphNotFound when the key does
// not exist.
type GraphStorage interface {
	SaveGraph(ctx context.Context, key string, data []byte) error
	LoadGraph(ctx context.Context, key string) ([]byte, error)
}

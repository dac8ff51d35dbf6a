package storage

import "io"

// BlobStore is where rosters are read from and exports are written to.
type BlobStore interface {
	Resolve(key string) (string, error)
	Put(key string, r io.Reader) (string, error) // returns the resolved path
	Get(key string) (io.ReadCloser, error)
}

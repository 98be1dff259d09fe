// Package blob stores snapshot archives outside the keyspace: on the local
// filesystem, in memory (tests), or in an S3-compatible bucket. Archives are
// small JSON documents, so the interface trades streaming for simplicity.
package blob

import (
	"context"
	"fmt"
	"time"
)

// Driver identifies a concrete archive store implementation.
type Driver string

const (
	DriverFilesystem Driver = "fs"     // local filesystem (default, dev)
	DriverS3         Driver = "s3"     // S3 / MinIO compatible
	DriverMemory     Driver = "memory" // in-memory (tests)
)

// Info describes a stored archive.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
}

// Store holds snapshot archives by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte) (Info, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Driver() Driver
}

// Options carries archive store construction parameters.
type Options struct {
	Driver Driver
	FSRoot string   // fs driver
	S3     S3Config // s3 driver
}

// Open selects and constructs an archive store. An empty driver defaults to
// the filesystem.
func Open(ctx context.Context, opts Options) (Store, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		return NewFilesystem(opts.FSRoot)
	case DriverS3:
		return NewS3(ctx, opts.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown archive driver %s", driver)
	}
}

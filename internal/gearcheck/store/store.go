// Package store defines the key-value port every GearCheck repository is
// built on, plus its backends. Values are JSON documents keyed by a fixed
// name, mirroring the single-writer storage model of the checklist app.
package store

import (
	"context"
	"errors"
)

// ErrNotFound 键不存在
var ErrNotFound = errors.New("key not found")

// Store 键值存储端口
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

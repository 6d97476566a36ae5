// Package kvstore is the single I/O boundary of the application. Every
// persisted collection lives under one key as a JSON document; callers
// never see storage errors, only the success flag.
package kvstore

import "context"

// Store is the key-value port the repositories are built on. Get decodes
// the stored JSON into dest and reports whether a value was decoded; a
// missing key and a failed read are indistinguishable to the caller.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}) bool
	Remove(ctx context.Context, key string) bool
	Clear(ctx context.Context) bool
	Has(ctx context.Context, key string) bool
}

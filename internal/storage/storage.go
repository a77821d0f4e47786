// Package storage is the persistence boundary: JSON state keyed by name,
// the local analog of browser localStorage.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
)

var ErrInvalidKey = errors.New("invalid storage key")

// Backend is raw keyed byte storage. Implementations: FileBackend for the
// application, MemoryBackend for tests.
type Backend interface {
	// Get returns the stored bytes for key, reporting whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Set stores data under key, replacing any previous value.
	Set(key string, data []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Bridge serializes container state to a Backend. It has no state of its
// own; containers own their keys exclusively.
type Bridge struct {
	backend Backend
	log     *slog.Logger
}

func NewBridge(backend Backend, log *slog.Logger) *Bridge {
	return &Bridge{backend: backend, log: log}
}

// Read unmarshals the value stored under key into v and reports whether a
// usable value was found. A corrupt entry is deleted and reported absent;
// nothing here ever surfaces an error to the caller.
func (b *Bridge) Read(key string, v any) bool {
	data, ok, err := b.backend.Get(key)
	if err != nil {
		b.log.Error("storage read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		b.log.Error("discarding corrupt storage entry", "key", key, "error", err)
		if derr := b.backend.Delete(key); derr != nil {
			b.log.Error("delete corrupt storage entry", "key", key, "error", derr)
		}
		return false
	}
	return true
}

// Write persists v under key. Fire-and-forget: a failed write is logged and
// in-memory state stays authoritative until the next successful write.
func (b *Bridge) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.log.Error("marshal storage entry", "key", key, "error", err)
		return
	}
	if err := b.backend.Set(key, data); err != nil {
		b.log.Error("storage write failed", "key", key, "error", err)
	}
}

// Remove deletes key, logging on failure.
func (b *Bridge) Remove(key string) {
	if err := b.backend.Delete(key); err != nil {
		b.log.Error("storage delete failed", "key", key, "error", err)
	}
}

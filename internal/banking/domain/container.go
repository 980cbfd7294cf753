package domain

import (
	"encoding/json"
	"time"
)

// Container wraps an encrypted payload with the time it was written and the schema
// version it was written with. It is serialized as JSON into local storage.
type Container[T any] struct {
	Encrypted T      `json:"encrypted"`
	Timestamp int64  `json:"timestamp"`
	Version   string `json:"version"`
}

// NewContainer stamps payload with now (epoch milliseconds) and version.
func NewContainer[T any](payload T, now time.Time, version string) Container[T] {
	return Container[T]{
		Encrypted: payload,
		Timestamp: now.UnixMilli(),
		Version:   version,
	}
}

// Check returns ErrVersionMismatch when the container was written with another schema
// version and ErrContainerExpired when more than ttl elapsed since it was written.
// A container exactly ttl old is still valid.
func (c Container[T]) Check(now time.Time, ttl time.Duration, version string) error {
	if c.Version != version {
		return ErrVersionMismatch
	}
	if now.UnixMilli()-c.Timestamp > ttl.Milliseconds() {
		return ErrContainerExpired
	}
	return nil
}

// MarshalContainer serializes a container to its stored JSON form.
func MarshalContainer[T any](c Container[T]) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalContainer parses a stored JSON container.
func UnmarshalContainer[T any](raw string) (Container[T], error) {
	var c Container[T]
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Container[T]{}, err
	}
	return c, nil
}

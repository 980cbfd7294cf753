package usecase

import (
	"context"
	"time"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
)

// Options control container validity.
type Options struct {
	// TTL is how long a container stays valid after it was written.
	TTL time.Duration
	// SchemaVersion is written into new containers and required of stored ones.
	SchemaVersion string
	// Now is the clock used for timestamps and expiry checks.
	Now func() time.Time
	// OnDiscard is called with the storage key and one of the Discard* reasons whenever a
	// stored container is deleted because it is no longer usable.
	OnDiscard func(ctx context.Context, key, reason string)
}

// Reasons passed to Options.OnDiscard.
const (
	DiscardUnparsable      = "unparsable"
	DiscardExpired         = "expired"
	DiscardVersionMismatch = "version_mismatch"
	DiscardUndecryptable   = "undecryptable"
)

// DefaultOptions returns a 15 minute TTL, schema version "1.0" and the wall clock.
func DefaultOptions() Options {
	return Options{
		TTL:           bankingDomain.DefaultTTL,
		SchemaVersion: bankingDomain.SchemaVersion,
		Now:           time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TTL <= 0 {
		o.TTL = d.TTL
	}
	if o.SchemaVersion == "" {
		o.SchemaVersion = d.SchemaVersion
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	if o.OnDiscard == nil {
		o.OnDiscard = func(context.Context, string, string) {}
	}
	return o
}

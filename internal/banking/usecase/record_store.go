package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	apperrors "github.com/allisson/bankvault/internal/errors"
)

// errUnchanged tells mutate to keep the stored record as it is.
var errUnchanged = errors.New("record unchanged")

// recordStore persists one encrypted record of type P (stored as E) in a versioned
// container under a fixed storage key. All operations hold the mutex so that a
// read-modify-write never interleaves with another write of the same key.
type recordStore[P, E any] struct {
	mu       sync.Mutex
	store    ContainerStore
	key      string
	notFound error
	encrypt  func(ctx context.Context, plain P) (E, error)
	decrypt  func(ctx context.Context, enc E) (P, error)
	opts     Options
	logger   *slog.Logger
}

func (r *recordStore[P, E]) load(ctx context.Context) (P, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

// loadLocked returns r.notFound when nothing valid is stored. Containers that cannot be
// parsed, are expired, carry another version or fail to decrypt are deleted first.
func (r *recordStore[P, E]) loadLocked(ctx context.Context) (P, error) {
	var zero P

	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return zero, r.notFound
		}
		return zero, err
	}

	container, err := bankingDomain.UnmarshalContainer[E](raw)
	if err != nil {
		return zero, r.discard(ctx, DiscardUnparsable, err)
	}

	if err := container.Check(r.opts.Now(), r.opts.TTL, r.opts.SchemaVersion); err != nil {
		reason := DiscardVersionMismatch
		if errors.Is(err, bankingDomain.ErrContainerExpired) {
			reason = DiscardExpired
		}
		return zero, r.discard(ctx, reason, err)
	}

	plain, err := r.decrypt(ctx, container.Encrypted)
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrKeyManagement) {
			return zero, err
		}
		return zero, r.discard(ctx, DiscardUndecryptable, err)
	}

	return plain, nil
}

// discard deletes the stored container and reports absence, unless the delete itself fails.
func (r *recordStore[P, E]) discard(ctx context.Context, reason string, cause error) error {
	level := slog.LevelWarn
	if reason == DiscardExpired {
		level = slog.LevelInfo
	}
	r.logger.Log(ctx, level, "discarding cached banking data",
		slog.String("key", r.key),
		slog.String("reason", reason),
		slog.Any("error", cause),
	)

	if err := r.store.Delete(ctx, r.key); err != nil {
		return err
	}
	r.opts.OnDiscard(ctx, r.key, reason)
	return r.notFound
}

func (r *recordStore[P, E]) save(ctx context.Context, plain P) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(ctx, plain)
}

func (r *recordStore[P, E]) saveLocked(ctx context.Context, plain P) error {
	enc, err := r.encrypt(ctx, plain)
	if err != nil {
		return err
	}

	raw, err := bankingDomain.MarshalContainer(bankingDomain.NewContainer(enc, r.opts.Now(), r.opts.SchemaVersion))
	if err != nil {
		return err
	}

	return r.store.Set(ctx, r.key, raw)
}

// mutate loads the current record, passes it to fn together with whether it was found,
// and stores whatever fn returns. An error from fn aborts without writing; errUnchanged
// aborts without writing and without error.
func (r *recordStore[P, E]) mutate(ctx context.Context, fn func(current P, found bool) (P, error)) (P, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero P

	current, err := r.loadLocked(ctx)
	found := err == nil
	if err != nil && !errors.Is(err, r.notFound) {
		return zero, err
	}

	next, err := fn(current, found)
	if errors.Is(err, errUnchanged) {
		return current, nil
	}
	if err != nil {
		return zero, err
	}

	if err := r.saveLocked(ctx, next); err != nil {
		return zero, err
	}
	return next, nil
}

func (r *recordStore[P, E]) clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Delete(ctx, r.key)
}

// has reports whether a valid record is stored. It applies the same discard rules as load.
func (r *recordStore[P, E]) has(ctx context.Context) (bool, error) {
	_, err := r.load(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, r.notFound) {
		return false, nil
	}
	return false, err
}

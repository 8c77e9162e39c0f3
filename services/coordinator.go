package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/tadeyemo32/persona-backend/models"
)

var (
	// ErrEmptyQuery rejects queries whose every field is blank. They would
	// fingerprint fine but cache nothing worth keeping.
	ErrEmptyQuery = errors.New("at least one search field must be filled")

	// ErrComputeFailed wraps an upstream enrichment failure. The query is
	// left uncached so a retry recomputes.
	ErrComputeFailed = errors.New("enrichment compute failed")
)

// ComputeFunc is the expensive enrichment computation the coordinator
// caches. It may be slow and may fail; it must not touch the store.
type ComputeFunc func(ctx context.Context, query models.SearchQuery) (models.EnrichmentData, error)

// Result pairs a resolved history entry with how it was obtained, so
// callers learn cache status without parsing payload text.
type Result struct {
	Entry  models.SearchHistoryEntry
	Cached bool
}

// CoordinatorOptions tune the cache policy.
type CoordinatorOptions struct {
	// TTL is the freshness window; records older than this are recomputed
	// on the next lookup. Defaults to 2h.
	TTL time.Duration

	// ComputeTimeout bounds a single compute call so a stuck upstream
	// cannot wedge later requests waiting on the same fingerprint.
	// Defaults to 30s.
	ComputeTimeout time.Duration
}

// Coordinator sits in front of the enrichment compute: fingerprint the
// query, serve the stored record while fresh, otherwise compute and write
// through the store. Concurrent lookups of the same fingerprint are
// coalesced so only one compute runs.
type Coordinator struct {
	store          HistoryStore
	compute        ComputeFunc
	ttl            time.Duration
	computeTimeout time.Duration

	group singleflight.Group
	now   func() time.Time
}

func NewCoordinator(store HistoryStore, compute ComputeFunc, opts CoordinatorOptions) *Coordinator {
	if opts.TTL <= 0 {
		opts.TTL = 2 * time.Hour
	}
	if opts.ComputeTimeout <= 0 {
		opts.ComputeTimeout = 30 * time.Second
	}
	return &Coordinator{
		store:          store,
		compute:        compute,
		ttl:            opts.TTL,
		computeTimeout: opts.ComputeTimeout,
		now:            time.Now,
	}
}

// Resolve returns the enrichment record for a (user, query) pair, from
// cache when a record exists and is younger than the TTL, otherwise by
// computing and persisting a replacement under the same fingerprint.
func (co *Coordinator) Resolve(ctx context.Context, userID string, query models.SearchQuery) (Result, error) {
	if query.IsEmpty() {
		return Result{}, ErrEmptyQuery
	}

	fp := QueryFingerprint(userID, query)

	// Coalesce concurrent lookups of the same fingerprint: late callers
	// wait for the first compute instead of running their own.
	v, err, _ := co.group.Do(fp, func() (any, error) {
		return co.resolveOne(ctx, fp, userID, query)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (co *Coordinator) resolveOne(ctx context.Context, fp, userID string, query models.SearchQuery) (Result, error) {
	existing, err := co.store.Get(fp)
	if err != nil {
		return Result{}, err
	}

	if existing != nil && co.now().Sub(existing.CreatedAt) < co.ttl {
		log.Debug().Str("fingerprint", fp).Msg("returning cached enrichment")
		return Result{Entry: *existing, Cached: true}, nil
	}

	log.Debug().Str("fingerprint", fp).Bool("stale", existing != nil).Msg("computing enrichment")

	cctx, cancel := context.WithTimeout(ctx, co.computeTimeout)
	defer cancel()
	data, err := co.compute(cctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrComputeFailed, err)
	}

	entry := models.SearchHistoryEntry{
		ID:        fp,
		Query:     query,
		Data:      data,
		CreatedAt: co.now(),
		UserID:    userID,
	}
	if err := co.store.Put(&entry); err != nil {
		return Result{}, err
	}

	return Result{Entry: entry, Cached: false}, nil
}

// ListHistory returns the user's enrichment records, newest first.
func (co *Coordinator) ListHistory(userID string) ([]models.SearchHistoryEntry, error) {
	return co.store.ListByOwner(userID)
}

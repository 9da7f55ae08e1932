package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/veloro/deliverydesk/internal/domain"
	"github.com/veloro/deliverydesk/internal/ports"
)

// LookupOutcome names the terminal states of one lookup submission.
type LookupOutcome int

const (
	// LookupSuperseded: a newer input arrived before the quiet period ended,
	// or the caller went away. Nothing was requested for this input.
	LookupSuperseded LookupOutcome = iota
	// LookupSkipped: the settled input did not normalize to exactly eight
	// digits. No request, no error.
	LookupSkipped
	// LookupFound: the settled input resolved to a structured address.
	LookupFound
	// LookupNotFound: the remote side answered 404 for the postal code.
	LookupNotFound
	// LookupFailed: any other lookup failure.
	LookupFailed
)

// LookupResult is the outcome of one settled (or superseded) submission.
type LookupResult struct {
	Outcome LookupOutcome
	Address domain.Address
	Notice  Notice
	// CallDuration is how long the network call took. The loading indicator
	// covers only this span, never the quiet-period wait.
	CallDuration time.Duration
}

// LookupFlow debounces postal-code input against the address lookup service.
//
// Each Submit registers its input as the newest generation and releases every
// older waiter immediately. Only the newest generation survives its quiet
// period and issues the lookup: at most one request is in flight per settled
// input, and rapid edits collapse to the last value (last write wins). An
// in-flight request is never aborted by a newer input; its result is simply
// not the one a superseded caller sees.
//
// Lookup results are served from a cache on the remote side for repeated
// postal codes; the flow performs no local caching.
type LookupFlow struct {
	lookup   ports.AddressLookup
	debounce time.Duration
	log      *slog.Logger

	mu   sync.Mutex
	gen  uint64
	wake chan struct{}
}

// NewLookupFlow creates a debounced lookup flow with the given quiet period.
func NewLookupFlow(lookup ports.AddressLookup, debounce time.Duration, log *slog.Logger) *LookupFlow {
	return &LookupFlow{lookup: lookup, debounce: debounce, log: log}
}

// Submit registers one raw input and blocks until it is superseded or
// settled. Context cancellation counts as supersession: the stale caller gets
// a silent LookupSuperseded, never an error.
func (f *LookupFlow) Submit(ctx context.Context, raw string) LookupResult {
	f.mu.Lock()
	f.gen++
	myGen := f.gen
	if f.wake != nil {
		close(f.wake) // release every older waiter before its timer fires
	}
	wake := make(chan struct{})
	f.wake = wake
	f.mu.Unlock()

	timer := time.NewTimer(f.debounce)
	defer timer.Stop()

	select {
	case <-wake:
		return LookupResult{Outcome: LookupSuperseded}
	case <-ctx.Done():
		return LookupResult{Outcome: LookupSuperseded}
	case <-timer.C:
	}

	// The quiet period passed; only the newest generation may proceed.
	f.mu.Lock()
	settled := f.gen == myGen
	f.mu.Unlock()
	if !settled {
		return LookupResult{Outcome: LookupSuperseded}
	}

	zip := domain.NormalizeZip(raw)
	if len(zip) != domain.ZipLength {
		return LookupResult{Outcome: LookupSkipped}
	}

	start := time.Now()
	addr, err := f.lookup.ByZip(ctx, zip)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ports.ErrNotFound):
		return LookupResult{
			Outcome:      LookupNotFound,
			Notice:       Notice{Level: NoticeError, Message: "CEP não encontrado"},
			CallDuration: elapsed,
		}
	case err != nil:
		f.log.Error("address lookup failed", "zip", zip, "err", err)
		return LookupResult{
			Outcome:      LookupFailed,
			Notice:       Notice{Level: NoticeError, Message: "Erro ao buscar endereço"},
			CallDuration: elapsed,
		}
	}

	return LookupResult{
		Outcome:      LookupFound,
		Address:      addr,
		Notice:       Notice{Level: NoticeSuccess, Message: "Endereço encontrado!"},
		CallDuration: elapsed,
	}
}

// LookupRegistry hands out one LookupFlow per form instance, so concurrent
// operators (or browser tabs) never debounce each other's input.
type LookupRegistry struct {
	mu      sync.Mutex
	flows   map[string]*registryEntry
	build   func() *LookupFlow
	maxIdle time.Duration
}

type registryEntry struct {
	flow     *LookupFlow
	lastUsed time.Time
}

// NewLookupRegistry creates a registry; build constructs a fresh flow for an
// unseen key, and entries idle longer than maxIdle are pruned on access.
func NewLookupRegistry(build func() *LookupFlow, maxIdle time.Duration) *LookupRegistry {
	return &LookupRegistry{
		flows:   make(map[string]*registryEntry),
		build:   build,
		maxIdle: maxIdle,
	}
}

// Flow returns the flow for the given form key, creating it on first use.
func (r *LookupRegistry) Flow(key string) *LookupFlow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for k, e := range r.flows {
		if k != key && now.Sub(e.lastUsed) > r.maxIdle {
			delete(r.flows, k)
		}
	}

	e, ok := r.flows[key]
	if !ok {
		e = &registryEntry{flow: r.build()}
		r.flows[key] = e
	}
	e.lastUsed = now
	return e.flow
}

package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/internal/metrics"
	"github.com/dmitrymomot/gstcheck/pkg/cache"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/statemachine"
	"github.com/dmitrymomot/gstcheck/pkg/validator"
)

// Field is the form and query field carrying the identifier.
const Field = "gstin"

const (
	tierMemory = "memory"
	tierStore  = "store"
)

// Fetcher retrieves return data for one identifier. *gstapi.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, id gstin.GSTIN) (*gstapi.Envelope, error)
}

// Service runs lookups. It is safe for concurrent use; every call gets its
// own flow state.
type Service struct {
	cfg     Config
	fetcher Fetcher
	store   Store
	local   *cache.LRUCache[gstin.GSTIN, Entry]
	group   singleflight.Group
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStore adds a second cache tier behind the in-memory one.
func WithStore(s Store) Option {
	return func(svc *Service) { svc.store = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) {
		if l != nil {
			svc.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(svc *Service) { svc.metrics = m }
}

// WithClock drives in-memory cache expiry.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) {
		if now != nil {
			svc.now = now
		}
	}
}

// New builds a Service. cfg must be valid.
func New(cfg Config, f Fetcher, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil fetcher", ErrInvalidConfig)
	}

	s := &Service{
		cfg:     cfg,
		fetcher: f,
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("lookup"))
	s.local = cache.NewLRUCache[gstin.GSTIN, Entry](cfg.CacheSize,
		cache.WithTTL[gstin.GSTIN, Entry](cfg.CacheTTL),
		cache.WithClock[gstin.GSTIN, Entry](s.now),
	)
	return s, nil
}

// Lookup validates req.Input and, when valid, resolves it to one of
// StateSuccess, StateNotFound or StateError. Invalid input ends in StateIdle
// and never reaches the Fetcher.
func (s *Service) Lookup(ctx context.Context, req Request) Outcome {
	start := time.Now()
	flow := newFlow(s.log)
	out := s.run(ctx, flow, req)
	out.State = statemachine.StringState(flow.Current().Name())

	s.metrics.ObserveLookup(outcomeLabel(out))
	s.log.LogAttrs(ctx, slog.LevelInfo, "lookup finished",
		logger.GSTIN(out.GSTIN.String()),
		logger.Outcome(outcomeLabel(out)),
		logger.CacheTier(out.Cache),
		logger.Duration(time.Since(start)),
		logger.Error(out.Err),
	)
	return out
}

func (s *Service) run(ctx context.Context, flow statemachine.StateMachine, req Request) Outcome {
	var out Outcome
	s.advance(ctx, flow, eventSubmit)

	id, err := Validate(req.Input)
	if err != nil {
		s.advance(ctx, flow, eventReject)
		out.Err = err
		out.Message = validationMessage(err)
		return out
	}
	out.GSTIN = id
	s.advance(ctx, flow, eventAccept)

	entry, tier, err := s.resolve(ctx, id)
	out.Cache = tier
	switch {
	case err != nil:
		s.advance(ctx, flow, eventFail)
		out.Err = err
		out.Message = gstapi.Message(err)
	case !entry.Found:
		s.advance(ctx, flow, eventMissing)
		out.Message = NotFoundMessage
	default:
		s.advance(ctx, flow, eventFound)
		out.Result = entry.Envelope
		out.CanonicalPath = gstin.Path(entry.Envelope.Data.DisplayName(), id)
		if req.CurrentPath != "" && !gstin.IsCanonical(req.CurrentPath, entry.Envelope.Data.DisplayName(), id) {
			out.RedirectTo = out.CanonicalPath
		}
	}
	return out
}

// advance fires a transition that the flow definition always allows.
func (s *Service) advance(ctx context.Context, flow statemachine.StateMachine, ev statemachine.Event) {
	if err := flow.Fire(ctx, ev, nil); err != nil {
		s.log.ErrorContext(ctx, "lookup flow out of sync", logger.Error(err))
	}
}

// Validate normalizes and checks raw the way Lookup does. The error wraps
// ErrInvalidInput and a validator.ValidationErrors for Field.
func Validate(raw string) (gstin.GSTIN, error) {
	required := validator.RequiredString(Field, raw)
	required.Error.Message = "Please enter a GSTIN"

	if err := validator.First(required, gstin.Rule(Field, raw)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return gstin.MustParse(raw), nil
}

func validationMessage(err error) string {
	if ve := validator.ExtractValidationErrors(err); len(ve) > 0 {
		return ve[0].Message
	}
	return "GSTIN is invalid"
}

// resolve serves id from the caches or a single shared upstream fetch.
// The shared fetch outlives a cancelled caller so other waiters still get
// the result; it is bounded by FetchTimeout instead.
func (s *Service) resolve(ctx context.Context, id gstin.GSTIN) (Entry, string, error) {
	if e, ok := s.local.Get(id); ok {
		s.metrics.ObserveCache(tierMemory, true)
		return e, tierMemory, nil
	}
	s.metrics.ObserveCache(tierMemory, false)

	ch := s.group.DoChan(id.String(), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.FetchTimeout)
		defer cancel()
		return s.load(fctx, id)
	})

	select {
	case <-ctx.Done():
		return Entry{}, "", ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.metrics.IncrementSharedFetch()
		}
		if res.Err != nil {
			return Entry{}, "", res.Err
		}
		r := res.Val.(loaded)
		return r.entry, r.tier, nil
	}
}

type loaded struct {
	entry Entry
	tier  string
}

func (s *Service) load(ctx context.Context, id gstin.GSTIN) (loaded, error) {
	if s.store != nil {
		e, err := s.store.Get(ctx, id)
		if err == nil && !e.complete() {
			err = fmt.Errorf("%w: found without data", ErrCorruptEntry)
		}
		switch {
		case err == nil:
			s.metrics.ObserveCache(tierStore, true)
			s.remember(id, e)
			return loaded{entry: e, tier: tierStore}, nil
		case errors.Is(err, ErrCacheMiss):
			s.metrics.ObserveCache(tierStore, false)
		default:
			s.log.WarnContext(ctx, "lookup store read failed", logger.GSTIN(id.String()), logger.Error(err))
		}
	}

	env, err := s.fetcher.Fetch(ctx, id)
	var e Entry
	switch {
	case err == nil && env != nil && env.Data != nil:
		e = Entry{Found: true, Envelope: env}
	case err == nil, errors.Is(err, gstapi.ErrNotFound):
		e = Entry{}
	default:
		return loaded{}, err
	}

	s.remember(id, e)
	if s.store != nil {
		if ttl := s.ttlFor(e); ttl > 0 {
			if err := s.store.Set(ctx, id, e, ttl); err != nil {
				s.log.WarnContext(ctx, "lookup store write failed", logger.GSTIN(id.String()), logger.Error(err))
			}
		}
	}
	return loaded{entry: e}, nil
}

func (s *Service) remember(id gstin.GSTIN, e Entry) {
	if ttl := s.ttlFor(e); ttl > 0 {
		s.local.PutWithTTL(id, e, ttl)
	}
}

func (s *Service) ttlFor(e Entry) time.Duration {
	if e.Found {
		return s.cfg.CacheTTL
	}
	return s.cfg.NotFoundTTL
}

func outcomeLabel(o Outcome) string {
	if o.Rejected() {
		return "invalid"
	}
	return o.State.Name()
}

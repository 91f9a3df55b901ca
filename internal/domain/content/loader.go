package content

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"petcare-landing/internal/platform/logger"
	"petcare-landing/internal/platform/metrics"
)

const (
	kindTestimonials = "testimonials"
	kindPlans        = "plans"
)

type LoaderOptions struct {
	// Timeout por carga completa; 0 = sin timeout.
	Timeout time.Duration
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// Loader resuelve testimonials y plans contra la fuente remota con fallback.
// Nunca deja la landing sin contenido ni con el flag de loading colgado.
type Loader struct {
	src     Source
	timeout time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	// settled se llama una vez por carga, al limpiar el flag (tests).
	settled func()

	mu       sync.RWMutex
	state    State
	inflight int
}

func NewLoader(src Source, opts LoaderOptions) *Loader {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Loader{
		src:     src,
		timeout: opts.Timeout,
		log:     log.With(map[string]any{"component": "content"}),
		metrics: opts.Metrics,
		now:     time.Now,
		// La página arranca cargando hasta la primera carga.
		state: State{Loading: true},
	}
}

// Snapshot devuelve una copia del estado actual.
func (l *Loader) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return State{
		Testimonials: append([]Testimonial(nil), l.state.Testimonials...),
		Plans:        append([]Plan(nil), l.state.Plans...),
		Loading:      l.state.Loading,
	}
}

// Load ejecuta una carga completa y devuelve el estado resultante.
// Cada query cae a su fallback de forma independiente (error o 0 filas);
// un panic en cualquier punto hace caer ambos sets.
func (l *Loader) Load(ctx context.Context) State {
	st, _ := l.load(ctx)
	return st
}

// load además indica si algún set cayó al fallback por error, timeout o panic.
// La ausencia de configuración y las 0 filas no cuentan como falla.
func (l *Loader) load(ctx context.Context) (st State, failed bool) {
	start := time.Now()
	l.begin()

	defer func() {
		if r := recover(); r != nil {
			failed = true
			l.log.Error("content load panicked, using fallback", map[string]any{"panic": fmt.Sprint(r)})
			l.metrics.ContentFallback(kindTestimonials, metrics.ReasonPanic)
			l.metrics.ContentFallback(kindPlans, metrics.ReasonPanic)
			now := l.now()
			l.set(FallbackTestimonials(now), FallbackPlans(now))
		}
		l.end()
		l.metrics.ContentLoaded(time.Since(start))
		st = l.Snapshot()
	}()

	if l.src == nil || !l.src.IsConfigured() {
		l.log.Info("content source not configured, using fallback", nil)
		l.metrics.ContentFallback(kindTestimonials, metrics.ReasonNotConfigured)
		l.metrics.ContentFallback(kindPlans, metrics.ReasonNotConfigured)
		now := l.now()
		l.set(FallbackTestimonials(now), FallbackPlans(now))
		return
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		testimonials []Testimonial
		plans        []Plan
		queryFailed  atomic.Bool

		pmu      sync.Mutex
		panicked any
	)
	capture := func() {
		if r := recover(); r != nil {
			pmu.Lock()
			if panicked == nil {
				panicked = r
			}
			pmu.Unlock()
		}
	}

	// Las funciones nunca devuelven error: una query que falla no cancela a la otra.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer capture()
		testimonials = resolve(gctx, l, &queryFailed, kindTestimonials, l.src.ListTestimonials, FallbackTestimonials)
		return nil
	})
	g.Go(func() error {
		defer capture()
		plans = resolve(gctx, l, &queryFailed, kindPlans, l.src.ListPlans, FallbackPlans)
		return nil
	})
	_ = g.Wait()

	// Re-lanzar en esta goroutine para que el recover de arriba aplique el fallback total.
	if panicked != nil {
		panic(panicked)
	}

	l.set(testimonials, plans)
	failed = queryFailed.Load()
	return
}

func resolve[T any](
	ctx context.Context,
	l *Loader,
	failed *atomic.Bool,
	kind string,
	fetch func(context.Context) ([]T, error),
	fallback func(time.Time) []T,
) []T {
	rows, err := fetch(ctx)
	switch {
	case err != nil:
		l.log.Error("content query failed, using fallback", map[string]any{"kind": kind, "error": err.Error()})
		l.metrics.ContentFallback(kind, metrics.ReasonError)
		failed.Store(true)
		return fallback(l.now())
	case len(rows) == 0:
		l.log.Warn("content query returned no rows, using fallback", map[string]any{"kind": kind})
		l.metrics.ContentFallback(kind, metrics.ReasonEmpty)
		return fallback(l.now())
	default:
		return rows
	}
}

func (l *Loader) begin() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inflight++
	l.state.Loading = true
}

func (l *Loader) end() {
	l.mu.Lock()
	l.inflight--
	if l.inflight <= 0 {
		l.inflight = 0
		l.state.Loading = false
	}
	l.mu.Unlock()

	if l.settled != nil {
		l.settled()
	}
}

func (l *Loader) set(t []Testimonial, p []Plan) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Testimonials = t
	l.state.Plans = p
}

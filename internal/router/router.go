package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petcare-landing/docs"
	"petcare-landing/internal/adapters/auth/stub"
	"petcare-landing/internal/adapters/storage/localstore"
	mem "petcare-landing/internal/adapters/storage/memory"
	"petcare-landing/internal/domain/content"
	"petcare-landing/internal/domain/pets"
	"petcare-landing/internal/domain/users"
	"petcare-landing/internal/middleware"
	"petcare-landing/internal/platform/logger"
	"petcare-landing/internal/platform/metrics"
	"petcare-landing/internal/ports/auth"
	"petcare-landing/internal/ports/kv"
)

type Options struct {
	// Opcional: si no viene, slots in-memory.
	KV kv.Store

	// Opcional: si no viene, login stub sin latencia.
	Verifier auth.CredentialVerifier

	// Puede ser nil o no estar configurada: la landing usa el fallback.
	ContentSource   content.Source
	ContentTimeout  time.Duration
	ContentCacheTTL time.Duration

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	slots := opts.KV
	if slots == nil {
		slots = mem.NewKV()
	}
	verifier := opts.Verifier
	if verifier == nil {
		verifier = stub.NewVerifier(0)
	}

	// Repos: una sola instancia sirve usuario actual + mascotas
	store := localstore.New(slots)

	// Services por módulo
	usersSvc := users.NewService(store, verifier, log)
	petsSvc := pets.NewService(store, usersSvc, log)
	loader := content.NewLoader(opts.ContentSource, content.LoaderOptions{
		Timeout: opts.ContentTimeout,
		Logger:  log,
		Metrics: m,
	})
	contentSvc := content.NewService(loader, opts.ContentCacheTTL)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.CurrentUser(usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	content.RegisterRoutes(r, contentSvc)
	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)

	return r
}

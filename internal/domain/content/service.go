package content

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const stateCacheKey = "landing"

// Service cachea el último estado cargado para no pegarle a la fuente
// remota en cada request. ttl <= 0 desactiva el cache.
type Service struct {
	loader *Loader
	cache  *cache.Cache

	// serializa cargas en cache miss
	mu sync.Mutex
}

func NewService(loader *Loader, ttl time.Duration) *Service {
	s := &Service{loader: loader}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// Get devuelve el estado cacheado o carga uno nuevo.
func (s *Service) Get(ctx context.Context) State {
	if st, ok := s.cached(); ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.cached(); ok {
		return st
	}
	return s.load(ctx)
}

// Refresh ignora el cache y fuerza una carga.
func (s *Service) Refresh(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		s.cache.Delete(stateCacheKey)
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) State {
	// Un cliente que corta el request no debe dejar cacheado el fallback;
	// la carga queda acotada por el timeout del loader.
	st, failed := s.loader.load(context.WithoutCancel(ctx))
	// Un fallback por falla remota no se cachea: la próxima request reintenta.
	if s.cache != nil && !failed {
		s.cache.Set(stateCacheKey, st, cache.DefaultExpiration)
	}
	return st
}

func (s *Service) cached() (State, bool) {
	if s.cache == nil {
		return State{}, false
	}
	v, ok := s.cache.Get(stateCacheKey)
	if !ok {
		return State{}, false
	}
	st, ok := v.(State)
	return st, ok
}

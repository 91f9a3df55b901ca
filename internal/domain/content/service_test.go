package content

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingSource(calls *int32) *fakeSource {
	return &fakeSource{
		configured: true,
		testimonials: func(context.Context) ([]Testimonial, error) {
			n := atomic.AddInt32(calls, 1)
			return []Testimonial{{ID: "t", Rating: int(n)}}, nil
		},
		plans: func(context.Context) ([]Plan, error) { return threePlans(), nil },
	}
}

func TestService_GetUsesCache(t *testing.T) {
	var calls int32
	l, _ := newTestLoader(countingSource(&calls), LoaderOptions{})
	svc := NewService(l, time.Minute)

	first := svc.Get(context.Background())
	second := svc.Get(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, first, second)
	assert.False(t, second.Loading)
}

func TestService_RemoteErrorIsNotCached(t *testing.T) {
	var calls int32
	src := &fakeSource{
		configured: true,
		testimonials: func(context.Context) ([]Testimonial, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("connection reset")
			}
			return []Testimonial{{ID: "remote"}}, nil
		},
		plans: func(context.Context) ([]Plan, error) { return threePlans(), nil },
	}
	l, _ := newTestLoader(src, LoaderOptions{})
	svc := NewService(l, 5*time.Minute)

	first := svc.Get(context.Background())
	assert.Equal(t, FallbackTestimonials(fixedNow), first.Testimonials)

	second := svc.Get(context.Background())
	require.Len(t, second.Testimonials, 1)
	assert.Equal(t, "remote", second.Testimonials[0].ID)

	// ya recuperado, el estado sí queda cacheado
	svc.Get(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestService_PanicFallbackIsNotCached(t *testing.T) {
	var calls int32
	src := &fakeSource{
		configured: true,
		testimonials: func(context.Context) ([]Testimonial, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				panic("boom")
			}
			return []Testimonial{{ID: "remote"}}, nil
		},
		plans: func(context.Context) ([]Plan, error) { return threePlans(), nil },
	}
	l, _ := newTestLoader(src, LoaderOptions{})
	svc := NewService(l, 5*time.Minute)

	svc.Get(context.Background())
	st := svc.Get(context.Background())

	require.Len(t, st.Testimonials, 1)
	assert.Equal(t, threePlans(), st.Plans)
}

func TestService_NotConfiguredFallbackIsCached(t *testing.T) {
	var checks int32
	src := &countingConfigSource{checks: &checks}
	l, _ := newTestLoader(src, LoaderOptions{})
	svc := NewService(l, 5*time.Minute)

	first := svc.Get(context.Background())
	second := svc.Get(context.Background())

	assert.Equal(t, first, second)
	assert.Len(t, second.Plans, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&checks))
}

type countingConfigSource struct {
	fakeSource
	checks *int32
}

func (c *countingConfigSource) IsConfigured() bool {
	atomic.AddInt32(c.checks, 1)
	return false
}

func TestService_RefreshBypassesCache(t *testing.T) {
	var calls int32
	l, _ := newTestLoader(countingSource(&calls), LoaderOptions{})
	svc := NewService(l, time.Minute)

	svc.Get(context.Background())
	st := svc.Refresh(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.Len(t, st.Testimonials, 1)
	assert.Equal(t, 2, st.Testimonials[0].Rating)

	// el refresh queda cacheado
	again := svc.Get(context.Background())
	assert.Equal(t, 2, again.Testimonials[0].Rating)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestService_ZeroTTLDisablesCache(t *testing.T) {
	var calls int32
	l, _ := newTestLoader(countingSource(&calls), LoaderOptions{})
	svc := NewService(l, 0)

	svc.Get(context.Background())
	svc.Get(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestService_CanceledRequestDoesNotCancelLoad(t *testing.T) {
	src := &fakeSource{
		configured: true,
		testimonials: func(ctx context.Context) ([]Testimonial, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []Testimonial{{ID: "remote"}}, nil
		},
		plans: func(context.Context) ([]Plan, error) { return threePlans(), nil },
	}
	l, _ := newTestLoader(src, LoaderOptions{})
	svc := NewService(l, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := svc.Get(ctx)
	require.Len(t, st.Testimonials, 1)
	assert.Equal(t, "remote", st.Testimonials[0].ID)
}

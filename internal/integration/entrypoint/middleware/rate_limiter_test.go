package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisRateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateLimitStore(client), mr
}

func TestRateLimitStores(t *testing.T) {
	redisStore, mr := newRedisStore(t)
	memoryStore := NewMemoryRateLimitStore()
	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	memoryStore.now = func() time.Time { return clock }

	stores := []struct {
		name    string
		store   RateLimitStore
		advance func(time.Duration)
	}{
		{name: "memory", store: memoryStore, advance: func(d time.Duration) { clock = clock.Add(d) }},
		{name: "redis", store: redisStore, advance: mr.FastForward},
	}

	for _, tt := range stores {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			for want := int64(1); want <= 3; want++ {
				got, err := tt.store.Hit(ctx, "login|10.0.0.1", time.Minute)
				if err != nil {
					t.Fatalf("hit: %v", err)
				}
				if got != want {
					t.Fatalf("expected attempt %d, got %d", want, got)
				}
			}

			other, _ := tt.store.Hit(ctx, "login|10.0.0.2", time.Minute)
			if other != 1 {
				t.Errorf("keys must be counted independently, got %d", other)
			}

			tt.advance(61 * time.Second)
			got, _ := tt.store.Hit(ctx, "login|10.0.0.1", time.Minute)
			if got != 1 {
				t.Errorf("expected window reset after expiry, got %d", got)
			}

			if err := tt.store.Reset(ctx); err != nil {
				t.Fatalf("reset: %v", err)
			}
			got, _ = tt.store.Hit(ctx, "login|10.0.0.1", time.Minute)
			if got != 1 {
				t.Errorf("expected counter cleared by reset, got %d", got)
			}
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, _ := newRedisStore(t)
	limiter := NewRateLimiterWithStore(store, 2, time.Minute)

	router := gin.New()
	router.POST("/auth/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: expected %d, got %d", i+1, want[i], codes[i])
		}
	}
}

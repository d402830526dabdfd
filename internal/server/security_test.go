package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	// 5 reqs/sec, 10 reqs/min, 1s ban
	rl := NewRateLimiter(5, 10, 1*time.Second)
	ip := "127.0.0.1"

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(ip), "Request %d should be allowed", i)
	}

	// 6th request exceeds the per-second limit and triggers the ban
	assert.False(t, rl.Allow(ip), "6th request should be blocked")
	assert.False(t, rl.Allow(ip), "banned IP stays blocked")
}

func TestRateLimiter_MinuteLimit(t *testing.T) {
	t.Parallel()

	// 100/sec but only 5/min
	rl := NewRateLimiter(100, 5, 1*time.Second)
	ip := "10.0.0.1"

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(ip))
	}
	assert.False(t, rl.Allow(ip))
}

func TestRateLimiter_SeparateIPs(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 10, 1*time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))
	// A different IP has its own budget
	assert.True(t, rl.Allow("2.2.2.2"))
}

func TestRateLimiter_Concurrency(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(100, 200, 1*time.Second)
	var wg sync.WaitGroup
	successCount := 0
	var mu sync.Mutex

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("concurrent-test") {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Greater(t, successCount, 0)
	assert.LessOrEqual(t, successCount, 50)
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	oc := NewOriginChecker([]string{"https://party.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://party.example.com")
	assert.True(t, oc.Check(req))

	// Case insensitive match
	req.Header.Set("Origin", "https://Party.Example.Com")
	assert.True(t, oc.Check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, oc.Check(req))

	// Missing Origin header passes (non-browser clients)
	req.Header.Del("Origin")
	assert.True(t, oc.Check(req))
}

func TestOriginChecker_Wildcard(t *testing.T) {
	t.Parallel()

	oc := NewOriginChecker([]string{"*"})
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	assert.True(t, oc.Check(req))
}

func TestMessageRateLimiter(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(4)
	clientID := "client1"

	// Under the threshold: quiet
	allowed, warning := ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.False(t, warning)

	// Over half the limit: allowed but warned
	ml.AllowMessage(clientID)
	allowed, warning = ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.True(t, warning)

	// Over the limit: blocked, warnings counted
	ml.AllowMessage(clientID)
	allowed, _ = ml.AllowMessage(clientID)
	assert.False(t, allowed)
	assert.Equal(t, 1, ml.WarningCount(clientID))

	ml.Forget(clientID)
	assert.Equal(t, 0, ml.WarningCount(clientID))
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	assert.Equal(t, "192.168.1.10", GetClientIP(req))

	// X-Forwarded-For takes the first hop
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetClientIP(req))

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetClientIP(req))
}

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  5,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/users/", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_BurstThenDeny(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/users/abc/badges/calculate", "POST")
		require.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := l.Allow("1.2.3.4", "/users/abc/badges/calculate", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.1.1.1", "/users/abc/badges/calculate", "POST")
	}
	allowed, _ := l.Allow("2.2.2.2", "/users/abc/badges/calculate", "POST")
	assert.True(t, allowed, "a saturated client must not affect others")
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistBypasses(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/users/abc/badges/calculate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BlacklistDenies(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/users/abc/badges/calculate", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	calc := matchEndpoint("/users/abc/badges/calculate", "POST", configs)
	require.NotNil(t, calc)
	assert.Equal(t, 10, calc.Limit)

	assert.Nil(t, matchEndpoint("/users/abc/badges/calculate", "GET", configs))
	assert.Nil(t, matchEndpoint("/unknown", "GET", configs))
}

func TestParseIPList(t *testing.T) {
	list := parseIPList(" 1.1.1.1, 2.2.2.2 ,")
	assert.True(t, list["1.1.1.1"])
	assert.True(t, list["2.2.2.2"])
	assert.Len(t, list, 2)
}

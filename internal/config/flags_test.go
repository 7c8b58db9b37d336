package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress.Set ────────────────────────────────────────────────────────────

func TestNetAddressSet_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
	}{
		{"localhost", "localhost:8000", "localhost", 8000},
		{"ip address", "127.0.0.1:9090", "127.0.0.1", 9090},
		{"empty host", ":8000", "", 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tt.input))
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddressSet_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no colon", "localhost8000"},
		{"non-numeric port", "localhost:abc"},
		{"zero port", "localhost:0"},
		{"negative port", "localhost:-1"},
		{"bad host", "not-an-ip:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tt.input))
		})
	}
}

// ── NetAddress.String ─────────────────────────────────────────────────────────

func TestNetAddressString_Unset(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}

func TestNetAddressString_RoundTrip(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8000"))
	assert.Equal(t, "localhost:8000", a.String())
}

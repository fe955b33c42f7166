package renamed

import (
	"net/http"
	"strings"
)

const userAgent = "renamed-golang/0.1.0"

// Auth handles header generation.
type Auth struct {
	cfg Config
}

func newAuth(cfg Config) Auth {
	return Auth{cfg: cfg}
}

// Headers returns default headers including auth.
func (a Auth) Headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+a.key())
	h.Set("User-Agent", userAgent)
	return h
}

func (a Auth) key() string {
	// Strip "Bearer " prefix if user accidentally included it
	key := a.cfg.APIKey
	if strings.HasPrefix(strings.ToLower(key), "bearer ") {
		key = strings.TrimSpace(key[7:])
	}
	return key
}

// maskAPIKey renders a key safe for diagnostics: first 3 chars + "..." +
// last 4 chars, or a fixed marker for keys too short to mask.
func maskAPIKey(key string) string {
	if len(key) <= 7 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-4:]
}

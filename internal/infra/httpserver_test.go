package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerUsesConfig(t *testing.T) {
	cfg := &Config{
		Port:             "9090",
		HTTPReadTimeout:  15 * time.Second,
		HTTPWriteTimeout: 150 * time.Second,
		HTTPIdleTimeout:  60 * time.Second,
	}
	s := NewHTTPServer(cfg, http.NewServeMux())

	if s.Addr() != ":9090" {
		t.Errorf("Addr() = %q, want :9090", s.Addr())
	}
	if s.server.WriteTimeout != cfg.HTTPWriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", s.server.WriteTimeout, cfg.HTTPWriteTimeout)
	}
	if s.server.ReadTimeout != cfg.HTTPReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", s.server.ReadTimeout, cfg.HTTPReadTimeout)
	}
}

package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"8080":           ":8080",
		":9090":          ":9090",
		"127.0.0.1:8000": "127.0.0.1:8000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	if got.Port != DefaultPort || got.WriteTimeout != writeTimeout ||
		got.ReadHeaderTimeout != readHeaderTimeout || got.IdleTimeout != idleTimeout {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	custom := Config{Port: "9000", WriteTimeout: time.Second}.withDefaults()
	if custom.Port != "9000" || custom.WriteTimeout != time.Second {
		t.Fatalf("overrides lost: %+v", custom)
	}

	srv := newHTTPServer(custom, http.NotFoundHandler())
	if srv.Addr != ":9000" || srv.MaxHeaderBytes != maxHeaderBytes {
		t.Fatalf("unexpected server: addr=%q max=%d", srv.Addr, srv.MaxHeaderBytes)
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	s := &Server{}
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown before run: %v", err)
	}
	if s.Addr() != "" {
		t.Fatalf("addr before run = %q", s.Addr())
	}
}

func TestRunAndShutdown_Concurrent(t *testing.T) {
	s := &Server{}
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(Config{Port: "127.0.0.1:0"}, http.NotFoundHandler()) }()

	deadline := time.Now().Add(2 * time.Second)
	for s.Addr() == "" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Addr() != "127.0.0.1:0" {
		t.Fatalf("server not installed, addr=%q", s.Addr())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

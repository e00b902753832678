package sitebuild

import (
	"context"
	"errors"
	"log"
	"mime"
	"net/http"
	"time"
)

func init() {
	// Browsers refuse to stream-compile wasm served with any other type
	_ = mime.AddExtensionType(".wasm", "application/wasm")
}

// Handler serves the built site plus a health probe.
func Handler(siteDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Health())
	mux.Handle("GET /", http.FileServer(http.Dir(siteDir)))
	return mux
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}
}

// Serve serves siteDir on addr until ctx is cancelled.
func Serve(ctx context.Context, addr, siteDir string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(siteDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving %s on %s", siteDir, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

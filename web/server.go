package web

import (
	"context"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mogaika/aquarium_viewer/config"
	"github.com/mogaika/aquarium_viewer/driver"
	"github.com/mogaika/aquarium_viewer/scene"
	"github.com/mogaika/aquarium_viewer/status"
)

type Server struct {
	Runner *driver.Runner
	Scene  *scene.Desc
	Config *config.Viewer
	Status *status.Broadcaster
	// WebPath holds the static frontend in its data directory, empty disables it
	WebPath string

	upgrader websocket.Upgrader
}

func NewServer(runner *driver.Runner, desc *scene.Desc, cfg *config.Viewer, st *status.Broadcaster) *Server {
	return &Server{
		Runner: runner,
		Scene:  desc,
		Config: cfg,
		Status: st,
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/json/scene", s.HandlerAjaxScene).Methods("GET")
	r.HandleFunc("/json/config", s.HandlerAjaxConfig).Methods("GET")
	r.HandleFunc("/action/{key}", s.HandlerAction).Methods("POST")
	r.HandleFunc("/dump/scene.glb", s.HandlerDumpGLB).Methods("GET")
	r.HandleFunc("/dump/scene.yaml", s.HandlerDumpYAML).Methods("GET")
	r.HandleFunc("/ws", s.HandlerWebsocket)

	if s.WebPath != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(s.WebPath, "data"))))
	}

	return handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(r))
}

// Serve listens on addr until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[web] Starting server %v", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("[web] Stopping server %v", addr)
	if s.Status != nil {
		s.Status.Close()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/aquarium_viewer/driver"
	"github.com/mogaika/aquarium_viewer/utils/gltfutils"
	"github.com/mogaika/aquarium_viewer/webutils"
)

func (s *Server) HandlerAjaxScene(w http.ResponseWriter, r *http.Request) {
	if snap, err := s.Runner.Snapshot(r.Context()); err != nil {
		webutils.WriteError(w, http.StatusServiceUnavailable, err)
	} else {
		webutils.WriteJson(w, snap)
	}
}

func (s *Server) HandlerAjaxConfig(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.Config)
}

// HandlerAction feeds a key to the scene and answers with a frame drawn after it.
func (s *Server) HandlerAction(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var snap driver.Snapshot
	err := s.Runner.Do(r.Context(), func(l *driver.Loop) {
		l.Input(key)
		snap = l.Frame()
	})
	if err != nil {
		webutils.WriteError(w, http.StatusServiceUnavailable, err)
		return
	}
	webutils.WriteJson(w, snap)
}

func (s *Server) HandlerDumpGLB(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	var exportErr error
	err := s.Runner.Do(r.Context(), func(l *driver.Loop) {
		doc, err := gltfutils.ExportScene(l.Root)
		if err != nil {
			exportErr = err
			return
		}
		exportErr = gltfutils.ExportBinary(&buf, doc)
	})
	if err != nil {
		webutils.WriteError(w, http.StatusServiceUnavailable, err)
		return
	}
	if exportErr != nil {
		webutils.WriteError(w, http.StatusInternalServerError, exportErr)
		return
	}
	webutils.WriteFile(w, &buf, "scene.glb")
}

func (s *Server) HandlerDumpYAML(w http.ResponseWriter, r *http.Request) {
	if s.Scene == nil {
		webutils.WriteError(w, http.StatusNotFound, errors.New("no scene description"))
		return
	}
	var buf bytes.Buffer
	if err := s.Scene.WriteYAML(&buf); err != nil {
		webutils.WriteError(w, http.StatusInternalServerError, err)
		return
	}
	webutils.WriteFile(w, &buf, "scene.yaml")
}

func (s *Server) HandlerWebsocket(w http.ResponseWriter, r *http.Request) {
	if s.Status == nil {
		webutils.WriteError(w, http.StatusNotFound, errors.New("status is disabled"))
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] Websocket upgrade failed: %v", err)
		return
	}
	s.Status.Attach(conn)
}

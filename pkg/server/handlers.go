package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/cascade/pkg/display"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/output"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// maxBodySize caps change request bodies.
const maxBodySize = 64 * 1024

// ChangeRequest is the body of POST /sessions/{id}/changes.
//
// Dimension accepts a key ("dim1") or a configured label ("Region").
// An empty Value unsets the dimension.
type ChangeRequest struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) createSession(w http.ResponseWriter, _ *http.Request) {
	id := s.store.Create()
	s.metrics.sessionsCreated.Inc()
	s.metrics.sessionsActive.Set(float64(s.store.Len()))
	verbose.Printf("Session %s created", id)

	s.store.With(id, func(sess *filtering.Session) {
		writeJSON(w, http.StatusCreated, s.view(id, sess, nil))
	})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.With(id, func(sess *filtering.Session) {
		writeJSON(w, http.StatusOK, s.view(id, sess, nil))
	}) {
		sessionNotFound(w, id)
	}
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) {
		sessionNotFound(w, id)
		return
	}
	s.metrics.sessionsActive.Set(float64(s.store.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) applyChange(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ChangeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.metrics.rejected.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	dim, err := s.cfg.ResolveDimension(req.Dimension)
	if err != nil {
		s.metrics.rejected.WithLabelValues("invalid_dimension").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	value := strings.TrimSpace(req.Value)

	if !s.store.With(id, func(sess *filtering.Session) {
		cleared, err := sess.Apply(dim, value)
		if err != nil {
			reason := "invalid_dimension"
			if errors.Is(err, filtering.ErrUnknownValue) {
				reason = "unknown_value"
			}
			s.metrics.rejected.WithLabelValues(reason).Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.metrics.changes.WithLabelValues(dim.String()).Inc()
		labels := make([]string, 0, len(cleared))
		for _, d := range cleared {
			s.metrics.cleared.WithLabelValues(d.String()).Inc()
			labels = append(labels, s.cfg.Label(d))
		}
		verbose.ChangeApplied(s.cfg.Label(dim), value, labels)
		writeJSON(w, http.StatusOK, s.view(id, sess, cleared))
	}) {
		sessionNotFound(w, id)
	}
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.With(id, func(sess *filtering.Session) {
		sess.Reset()
		writeJSON(w, http.StatusOK, s.view(id, sess, nil))
	}) {
		sessionNotFound(w, id)
	}
}

func (s *Server) undoSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.With(id, func(sess *filtering.Session) {
		if _, ok := sess.Undo(); !ok {
			writeError(w, http.StatusConflict, "nothing to undo")
			return
		}
		writeJSON(w, http.StatusOK, s.view(id, sess, nil))
	}) {
		sessionNotFound(w, id)
	}
}

// view renders a session as
// {id, state, selectable, visible, summary, cleared?, undo_depth},
// with state and selectable keyed by dimension label in dimension order.
func (s *Server) view(id string, sess *filtering.Session, cleared []filtering.Dimension) *orderedmap.OrderedMap {
	snap := sess.Snapshot()
	opts := display.NewOptionsResult(s.cfg, snap, nil, s.sorter)
	items := display.NewItemsResult(s.cfg, snap)

	state := newMap()
	selectable := newMap()
	for _, d := range opts.Dimensions {
		if d.Selected != "" {
			state.Set(d.Label, d.Selected)
		}
		values := d.Values
		if values == nil {
			values = []string{}
		}
		selectable.Set(d.Label, values)
	}

	m := newMap()
	m.Set("id", id)
	m.Set("state", state)
	m.Set("selectable", selectable)
	m.Set("visible", items.Items)
	m.Set("summary", opts.Summary)
	if len(cleared) > 0 {
		labels := make([]string, 0, len(cleared))
		for _, d := range cleared {
			labels = append(labels, s.cfg.Label(d))
		}
		m.Set("cleared", labels)
	}
	m.Set("undo_depth", sess.Depth())
	return m
}

func newMap() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

func sessionNotFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("session %q not found", id))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := output.NewFormatter(output.FormatJSON, w).WriteJSON(data); err != nil {
		verbose.Printf("Failed to encode response: %v", err)
	}
}

// Package remotetest runs an in-process fake of the record service for
// tests and demos.
package remotetest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// UpdateCall is one captured update-record request.
type UpdateCall struct {
	RecordID       string
	Flags          string
	Fields         string
	MergeFields    string
	ServiceContext string
	Username       string
}

// Server is a scriptable record service. Set FailStatus to make the
// next calls fail with that HTTP status.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	failStatus int
	calls      []UpdateCall
}

func NewServer() *Server {
	s := &Server{}

	r := chi.NewRouter()
	r.Post("/api/record/update", s.updateRecord)

	s.Server = httptest.NewServer(r)
	return s
}

// Fail makes subsequent calls answer with status; 0 restores success.
func (s *Server) Fail(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Calls returns the captured requests in arrival order.
func (s *Server) Calls() []UpdateCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]UpdateCall(nil), s.calls...)
}

func (s *Server) updateRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username, _, _ := r.BasicAuth()
	call := UpdateCall{
		RecordID:       r.PostFormValue("recordId"),
		Flags:          r.PostFormValue("flags"),
		Fields:         r.PostFormValue("fieldsMap"),
		MergeFields:    r.PostFormValue("mergeFields"),
		ServiceContext: r.PostFormValue("serviceContext"),
		Username:       username,
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	failStatus := s.failStatus
	s.mu.Unlock()

	if failStatus != 0 {
		http.Error(w, http.StatusText(failStatus), failStatus)
		return
	}

	render.JSON(w, r, map[string]any{
		"recordId": call.RecordID,
		"fields":   call.Fields,
	})
}

package registry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"clasp/internal/domain"
)

// Server exposes an IdentityRegistry over HTTP:
//
//	POST /register      body: domain.RegisterRequest
//	GET  /keys/{owner}  response: domain.KeyRecord
//
// Proof verification stays inside the wrapped registry; the server only
// translates its answers to status codes.
type Server struct {
	reg domain.IdentityRegistry
	log *logrus.Logger
}

// NewServer wraps reg. A nil logger falls back to the logrus default.
func NewServer(reg domain.IdentityRegistry, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{reg: reg, log: log}
}

// Handler returns the registry's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /keys/{owner}", s.handleLookup)
	return mux
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Owner.String()) == "" {
		http.Error(w, "owner required", http.StatusBadRequest)
		return
	}

	if err := s.reg.Register(r.Context(), req); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrBadProof) || errors.Is(err, ErrRotationDenied) {
			status = http.StatusForbidden
		}
		s.log.WithFields(logrus.Fields{
			"owner": req.Owner,
			"error": err,
		}).Warn("registration rejected")
		http.Error(w, err.Error(), status)
		return
	}

	s.log.WithField("owner", req.Owner).Info("signing key registered")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	owner := domain.PartyRef(r.PathValue("owner"))

	key, ok, err := s.reg.Lookup(r.Context(), owner)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"owner": owner,
			"error": err,
		}).Error("lookup failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "not registered", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(domain.KeyRecord{Owner: owner, SigningKey: key})
}

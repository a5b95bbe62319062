package server

import (
	"encoding/json"
	"net/http"

	"github.com/clambin/blinkq/pattern"
	"github.com/clambin/blinkq/pattern/morse"
	log "github.com/sirupsen/logrus"
)

// handleBlink morse-encodes the posted text and queues the result
func (s *Server) handleBlink(w http.ResponseWriter, req *http.Request) {
	defer func() { _ = req.Body.Close() }()

	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		log.WithError(err).Warning("failed to parse blink request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patterns, err := morse.Encode(request.Text)
	if err != nil {
		log.WithError(err).WithField("text", request.Text).Warning("failed to encode blink request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.player.Enqueue(patterns...)
	log.WithField("text", request.Text).Debug("/blink")
	w.WriteHeader(http.StatusAccepted)
}

// handlePattern queues a single pattern, either by name or as a bit string
func (s *Server) handlePattern(w http.ResponseWriter, req *http.Request) {
	defer func() { _ = req.Body.Close() }()

	var request struct {
		Name string `json:"name"`
		Bits string `json:"bits"`
	}
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		log.WithError(err).Warning("failed to parse pattern request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var p pattern.Pattern
	switch {
	case request.Name != "":
		var ok bool
		if p, ok = s.library.Get(request.Name); !ok {
			log.WithField("name", request.Name).Warning("unknown pattern")
			http.Error(w, "unknown pattern: "+request.Name, http.StatusNotFound)
			return
		}
	default:
		var err error
		if p, err = pattern.Parse(request.Bits); err != nil {
			log.WithError(err).WithField("bits", request.Bits).Warning("invalid pattern")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	s.player.Enqueue(p)
	log.WithFields(log.Fields{"name": request.Name, "pattern": p.String()}).Debug("/pattern")
	w.WriteHeader(http.StatusAccepted)
}

// handleQueue reports the state of the queue
func (s *Server) handleQueue(w http.ResponseWriter, _ *http.Request) {
	response := struct {
		Length   int      `json:"length"`
		Capacity int      `json:"capacity"`
		Patterns []string `json:"patterns"`
	}{
		Length:   s.player.Length(),
		Capacity: s.player.Capacity(),
		Patterns: s.library.Names(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

package rest

import (
	"net/http"
	"strconv"
)

const headerActiveSessions = "X-Active-Sessions"

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
}

type sessionCounter interface {
	Active() int
}

type pingHandler struct {
	sessions sessionCounter
}

func NewPingHandler(sessions sessionCounter) PingHandler {
	return &pingHandler{sessions: sessions}
}

// PingHandler - liveness probe, reports the number of running sessions in a header.
func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(headerActiveSessions, strconv.Itoa(that.sessions.Active()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

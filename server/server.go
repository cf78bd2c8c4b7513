package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/thermal-sim/thermal-sim/tank"
)

// ListenAndServe mounts the hub at /ws and blocks serving clients.
func ListenAndServe(addr string, sc *tank.Scenario) error {
	hub := NewHub(sc)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	logrus.Infof("streaming server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

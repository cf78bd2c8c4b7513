// Package server streams live tank simulation frames to websocket clients.
// One Hub serves one scenario; each connection gets its own simulation run.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/thermal-sim/thermal-sim/tank"
	"github.com/thermal-sim/thermal-sim/tank/trace"
)

// Msg is the wire envelope exchanged with clients. Clients send
// {"type":"start"} and {"type":"stop"}; the hub replies with "frame",
// "done" and "error" messages.
type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

// Hub upgrades websocket connections and runs one simulation per client.
type Hub struct {
	scenario *tank.Scenario
	upgrader websocket.Upgrader
	// FrameDelay paces outgoing frames so browser clients can animate
	// them; zero streams as fast as the run produces records.
	FrameDelay time.Duration
}

// NewHub creates a hub serving the given scenario.
func NewHub(sc *tank.Scenario) *Hub {
	return &Hub{
		scenario: sc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and services one client session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	h.session(conn)
}

// session owns all writes to conn. Frames from the simulation goroutine
// arrive on a channel so that control replies and frames never interleave
// on the wire.
func (h *Hub) session(conn *websocket.Conn) {
	frames := make(chan trace.StepRecord, 64)
	done := make(chan error, 1)
	control := make(chan Msg, 4)
	var stop chan struct{}
	running := false

	// Whatever ends the session, a live run goroutine must be released or
	// it stays blocked on the frames channel forever.
	defer func() {
		if stop != nil {
			close(stop)
		}
	}()

	go h.readLoop(conn, control)

	for {
		select {
		case msg, ok := <-control:
			if !ok {
				return
			}
			switch msg.Type {
			case "start":
				if running {
					h.writeError(conn, "already running")
					continue
				}
				running = true
				stop = make(chan struct{})
				go h.runScenario(frames, done, stop)
			case "stop":
				if stop != nil {
					close(stop)
					stop = nil
				}
			default:
				h.writeError(conn, "unknown message type "+msg.Type)
			}

		case rec := <-frames:
			if err := conn.WriteJSON(Msg{Type: "frame", Content: mustMarshal(rec)}); err != nil {
				logrus.Debugf("client write: %v", err)
				return
			}
			if h.FrameDelay > 0 {
				time.Sleep(h.FrameDelay)
			}

		case err := <-done:
			// The run goroutine has exited; flush frames it left behind
			// before reporting completion.
			if werr := h.drainFrames(conn, frames); werr != nil {
				return
			}
			running = false
			stop = nil
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			if werr := conn.WriteJSON(Msg{Type: "done"}); werr != nil {
				return
			}
		}
	}
}

func (h *Hub) drainFrames(conn *websocket.Conn, frames <-chan trace.StepRecord) error {
	for {
		select {
		case rec := <-frames:
			if err := conn.WriteJSON(Msg{Type: "frame", Content: mustMarshal(rec)}); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (h *Hub) readLoop(conn *websocket.Conn, control chan<- Msg) {
	defer close(control)
	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			logrus.Debugf("client read: %v", err)
			return
		}
		control <- msg
	}
}

func (h *Hub) runScenario(frames chan<- trace.StepRecord, done chan<- error, stop <-chan struct{}) {
	sim, err := tank.NewSimulator(h.scenario)
	if err != nil {
		done <- err
		return
	}
	sim.Interrupt = stop
	sim.OnStep = func(rec trace.StepRecord) {
		select {
		case frames <- rec:
		case <-stop:
		}
	}
	done <- sim.Run()
}

func (h *Hub) writeError(conn *websocket.Conn, reason string) {
	if err := conn.WriteJSON(Msg{Type: "error", Content: mustMarshal(reason)}); err != nil {
		logrus.Debugf("client write: %v", err)
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable with an unmarshalable type, which would be a
		// programming error in this package.
		logrus.Panicf("marshal frame: %v", err)
	}
	return data
}

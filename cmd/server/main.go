package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ali-Badami/lsm-demo/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// Client message types
type ClientMessage struct {
	Type                string              `json:"type"`
	Params              *model.ParameterSet `json:"params,omitempty"`
	Calibration         *model.Calibration  `json:"calibration,omitempty"`
	OptimizationEnabled *bool               `json:"optimizationEnabled,omitempty"`
	Seed                int64               `json:"seed,omitempty"`
}

// Server message types
type ServerMessage struct {
	Type        string              `json:"type"`
	Params      *model.ParameterSet `json:"params,omitempty"`
	Calibration *model.Calibration  `json:"calibration,omitempty"`
	Results     *DashboardResults   `json:"results,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// DashboardResults bundles the output of all three calculators for one
// parameter set, the unit the dashboard redraws on every slider change.
type DashboardResults struct {
	Cost          model.CostResult          `json:"cost"`
	SpeedupSweep  []model.SpeedupPoint      `json:"speedupSweep"`
	Amplification model.AmplificationResult `json:"amplification"`
	Tradeoff      model.TradeoffPoint       `json:"tradeoff"`
	TradeoffCurve []model.TradeoffPoint     `json:"tradeoffCurve"`
	Verdict       model.WorkloadVerdict     `json:"verdict"`
}

// sessionState holds one connection's parameters and calibration
type sessionState struct {
	mu                  sync.Mutex
	params              model.ParameterSet
	calibration         model.Calibration
	optimizationEnabled bool
	seed                int64
}

func newSessionState() *sessionState {
	return &sessionState{
		params:              model.DefaultParameters(),
		calibration:         model.DefaultCalibration(),
		optimizationEnabled: true,
	}
}

// apply merges a client message into the session. Invalid inputs are
// rejected whole; the session keeps its previous values.
func (s *sessionState) apply(msg ClientMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.Params != nil {
		if err := msg.Params.Validate(); err != nil {
			return err
		}
		s.params = *msg.Params
	}
	if msg.Calibration != nil {
		if err := msg.Calibration.Validate(); err != nil {
			return err
		}
		s.calibration = *msg.Calibration
	}
	if msg.OptimizationEnabled != nil {
		s.optimizationEnabled = *msg.OptimizationEnabled
	}
	if msg.Seed != 0 {
		s.seed = msg.Seed
	}
	return nil
}

// compute runs all three calculators against the current session state.
func (s *sessionState) compute() (*DashboardResults, error) {
	s.mu.Lock()
	params, cal := s.params, s.calibration
	optimization, seed := s.optimizationEnabled, s.seed
	s.mu.Unlock()

	cost, err := model.ComputeUpdateCost(params)
	if err != nil {
		return nil, err
	}
	sweep, err := model.SweepCostByIndexCount(params, model.DefaultSweepRange())
	if err != nil {
		return nil, err
	}
	amplification, err := cal.SimulateWriteAmplification(
		params.WriteLoadOpsPerSec, params.FlushThresholdMB, optimization, seed)
	if err != nil {
		return nil, err
	}
	tradeoff, err := cal.TradeoffPoint(params.WriteRatioPct)
	if err != nil {
		return nil, err
	}
	curve, err := cal.TradeoffCurve(model.DefaultTradeoffSamples())
	if err != nil {
		return nil, err
	}

	return &DashboardResults{
		Cost:          cost,
		SpeedupSweep:  sweep,
		Amplification: amplification,
		Tradeoff:      tradeoff,
		TradeoffCurve: curve,
		Verdict:       cal.ClassifyWorkload(params.WriteRatioPct),
	}, nil
}

// snapshot returns the current params and calibration for status messages
func (s *sessionState) snapshot() (model.ParameterSet, model.Calibration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params, s.calibration
}

// safeConn wraps a WebSocket connection with a mutex to prevent concurrent writes
type safeConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (sc *safeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	safeConn := &safeConn{Conn: conn}
	log.Println("Client connected")

	session := newSessionState()

	// Send initial status so the client can populate its controls
	params, cal := session.snapshot()
	statusMsg := ServerMessage{
		Type:        "status",
		Params:      &params,
		Calibration: &cal,
	}
	if err := safeConn.WriteJSON(statusMsg); err != nil {
		log.Printf("Error sending status: %v", err)
		return
	}

	// Handle messages from client
	for {
		var msg ClientMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			break
		}

		log.Printf("Received command: %s", msg.Type)

		switch msg.Type {
		case "update":
			// Slider moved: merge the new inputs, recompute everything
			if err := session.apply(msg); err != nil {
				log.Printf("Rejected update: %v", err)
				safeConn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			sendResults(safeConn, session)

		case "compute":
			// Recompute with current inputs (fresh noise when seed is 0)
			sendResults(safeConn, session)

		case "reset":
			session = newSessionState()
			log.Println("Session reset to defaults")
			params, cal := session.snapshot()
			safeConn.WriteJSON(ServerMessage{
				Type:        "status",
				Params:      &params,
				Calibration: &cal,
			})

		default:
			log.Printf("Unknown command: %s", msg.Type)
			safeConn.WriteJSON(ServerMessage{Type: "error", Error: fmt.Sprintf("unknown command: %s", msg.Type)})
		}
	}

	log.Println("Client disconnected")
}

// sendResults computes and pushes one combined results message
func sendResults(conn *safeConn, session *sessionState) {
	results, err := session.compute()
	if err != nil {
		log.Printf("Compute failed: %v", err)
		conn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
		return
	}

	updatePrometheusMetrics(results)

	params, _ := session.snapshot()
	msg := ServerMessage{
		Type:    "results",
		Params:  &params,
		Results: results,
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("Error sending results: %v", err)
	}
}

func quitHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Shutdown requested via /quitquitquit")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Server shutting down...")

	go func() {
		time.Sleep(100 * time.Millisecond)
		log.Println("Server stopped")
		os.Exit(0)
	}()
}

func main() {
	initPrometheusMetrics()

	http.HandleFunc("/ws", handleWebSocket)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/quitquitquit", quitHandler)

	addr := ":8080"
	log.Printf("Server starting on http://localhost%s", addr)
	log.Printf("WebSocket endpoint: ws://localhost%s/ws", addr)
	log.Printf("Prometheus metrics: http://localhost%s/metrics", addr)
	log.Printf("Shutdown endpoint: http://localhost%s/quitquitquit", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

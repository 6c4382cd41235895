package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/render"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/spec"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/validation"
)

// Server is the interactive front end for exploring the cost model. Every
// request is evaluated from scratch; the last valid curve is kept so that a
// bad parameter set can still be answered with something to display.
type Server struct {
	defaults spec.CostParameters
	ranges   spec.Ranges
	port     int
	log      *logrus.Logger

	mu   sync.Mutex
	last *cost.Curve
}

// New creates a server whose parameters start from defaults.
func New(defaults spec.CostParameters, port int, log *logrus.Logger) *Server {
	return &Server{
		defaults: defaults,
		ranges:   spec.DefaultRanges(),
		port:     port,
		log:      log,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/parameters", s.handleParameters)
	mux.HandleFunc("GET /api/cost", s.handleCost)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/plot.svg", s.handlePlot)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Infof("Array cost server starting on http://localhost%s", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// params overlays the query string onto the defaults.
func (s *Server) params(q url.Values) (spec.CostParameters, error) {
	values := make(map[string]any, len(q))
	for k := range q {
		values[k] = q.Get(k)
	}
	return spec.Overlay(s.defaults, values)
}

// evaluate clamps p to the control ranges, evaluates it and records the curve
// as the last valid one on success.
func (s *Server) evaluate(p spec.CostParameters) (*cost.Curve, error) {
	p = s.ranges.Clamp(p)
	curve, err := cost.Evaluate(p)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"regime": p.Regime(),
			"gain":   p.SensitivityGain,
		}).WithError(err).Warn("evaluation failed")
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"regime":           curve.Regime,
		"optimal_diameter": curve.Optimum.DiameterM,
		"minimal_cost":     curve.Optimum.Cost,
	}).Debug("evaluated cost curve")

	s.mu.Lock()
	s.last = curve
	s.mu.Unlock()
	return curve, nil
}

func (s *Server) lastCurve() *cost.Curve {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// errorResponse is returned when a parameter set cannot be evaluated.
type errorResponse struct {
	Error string      `json:"error"`
	Kind  string      `json:"kind"`
	Last  *cost.Curve `json:"last_valid,omitempty"`
}

func errorKind(err error) string {
	var de *cost.DomainError
	var ipe *cost.InvalidParameterError
	switch {
	case errors.As(err, &de):
		return "domain"
	case errors.As(err, &ipe):
		return "invalid_parameter"
	default:
		return "request"
	}
}

func (s *Server) handleParameters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"defaults": s.defaults,
		"ranges":   s.ranges,
	})
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request", Last: s.lastCurve()})
		return
	}
	curve, err := s.evaluate(p)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: errorKind(err), Last: s.lastCurve()})
		return
	}
	writeJSON(w, http.StatusOK, curve)
}

// handleValidation reports on the same clamped parameter set that /api/cost
// and /api/plot.svg evaluate.
func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request"})
		return
	}
	_, report := validation.Validate(s.ranges.Clamp(p))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	p, err := s.params(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	curve, err := s.evaluate(p)
	if err != nil {
		curve = s.lastCurve()
		if curve == nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("X-Evaluation-Error", err.Error())
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.Write(w, curve, "svg"); err != nil {
		s.log.WithError(err).Error("rendering chart")
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>Cost Model</title></head>
<body style="font-family:system-ui;max-width:1200px;margin:2em auto">
<h2>Telescope Cost Model</h2>
<p>
This tool illustrates the trade-offs in designing an interferometric array by linking
antenna diameter <i>D</i>, number of antennas <i>n<sub>a</sub></i>, and total construction cost.
</p>
<h3>Construction Cost Function</h3>
<p style="font-family:monospace">
C<sub>total</sub> = C + f<sub>1</sub>&middot;n<sub>a</sub>&middot;(D/{{.ExistingDiameter}})<sup>alpha</sup> + f<sub>2</sub>&middot;n<sub>a</sub> + f<sub>3</sub>&middot;n<sub>a</sub><sup>2</sup>
</p>
<p>where the number of antennas depends on the degree of sensitivity improvement.</p>
<ul>
<li><b>C</b> &ndash; fixed base cost</li>
<li><b>f&#8321;</b> &ndash; antenna construction cost, scaling as D<sup>alpha</sup></li>
<li><b>f&#8322;</b> &ndash; receiver system cost per antenna</li>
<li><b>f&#8323;</b> &ndash; correlator cost, scaling as the square of its inputs</li>
<li><b>gain</b> &ndash; improvement in point-source line sensitivity over {{.ExistingAntennas}} &times; {{.ExistingDiameter}} m antennas</li>
</ul>
<p><a href="/api/parameters">parameters</a> &middot; <a href="/api/cost">cost curve</a> &middot; <a href="/api/validation">validation</a></p>
<img src="/api/plot.svg" alt="Construction cost vs antenna diameter">
</body></html>`))

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	err := indexTemplate.Execute(w, map[string]any{
		"ExistingDiameter": cost.ExistingDiameterM,
		"ExistingAntennas": cost.ExistingAntennas,
	})
	if err != nil {
		s.log.WithError(err).Error("rendering index")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

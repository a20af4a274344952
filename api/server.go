// Package api exposes the planner over HTTP for the drawing UI: mission
// listing, path validation and planning, and a debug chart of the last plan.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/banshee-data/pathplan/internal/geom"
	"github.com/banshee-data/pathplan/internal/httputil"
	"github.com/banshee-data/pathplan/internal/mission"
	"github.com/banshee-data/pathplan/internal/monitoring"
	"github.com/banshee-data/pathplan/internal/planner"
	"github.com/banshee-data/pathplan/internal/viz"
)

// Server serves planning requests for one mission set. The planner itself is
// stateless; the server only remembers the most recent plan per robot so the
// debug chart endpoint has something to draw.
type Server struct {
	optimizer *planner.Optimizer
	missions  *mission.Manager

	mu        sync.Mutex
	lastPlans map[mission.RobotColor]lastPlan
}

type lastPlan struct {
	robot  mission.Robot
	raw    []geom.Point
	result planner.PlanResult
}

// NewServer builds a server around the given optimizer and mission set.
func NewServer(optimizer *planner.Optimizer, missions *mission.Manager) *Server {
	return &Server{
		optimizer: optimizer,
		missions:  missions,
		lastPlans: make(map[mission.RobotColor]lastPlan),
	}
}

// ServeMux returns the route table for the server.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/missions", s.listMissions)
	mux.HandleFunc("/api/plan", s.planPath)
	mux.HandleFunc("/debug/plan.html", s.planChart)
	mux.HandleFunc("/", s.homeHandler)
	return mux
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to the Path Planner!"))
}

func (s *Server) listMissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, s.missions.Missions())
}

// planRequest is the drawing UI's planning payload. The drawn path is a flat
// ordered list of [x, y] pairs in surface pixels.
type planRequest struct {
	MissionID int          `json:"mission_id"`
	Robot     string       `json:"robot"`
	Path      [][2]float64 `json:"path"`
}

// planResponse mirrors PlanResult in export form: coordinate pairs in arena
// millimetres.
type planResponse struct {
	RunID        string                   `json:"run_id"`
	Robot        string                   `json:"robot"`
	Validation   planner.ValidationResult `json:"validation"`
	OrganicCount int                      `json:"organic_count,omitempty"`
	Waypoints    [][2]float64             `json:"waypoints,omitempty"`
}

func (s *Server) planPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	m, ok := s.missions.Mission(req.MissionID)
	if !ok {
		httputil.NotFound(w, fmt.Sprintf("unknown mission %d", req.MissionID))
		return
	}
	robot, ok := m.RobotByColor(mission.RobotColor(req.Robot))
	if !ok {
		httputil.NotFound(w, fmt.Sprintf("mission %d has no %q robot", req.MissionID, req.Robot))
		return
	}

	raw := make([]geom.Point, len(req.Path))
	for i, p := range req.Path {
		raw[i] = geom.Point{X: p[0], Y: p[1]}
	}

	result := s.optimizer.Plan(raw, robot.Endpoints())
	monitoring.Logf("api: planned %s path, accepted=%v organic=%d (run %s)",
		robot.DisplayName, result.Validation.Accepted, result.OrganicCount, result.RunID)

	if result.Validation.Accepted {
		s.mu.Lock()
		s.lastPlans[robot.Color] = lastPlan{robot: robot, raw: raw, result: result}
		s.mu.Unlock()
	}

	resp := planResponse{
		RunID:        result.RunID.String(),
		Robot:        string(robot.Color),
		Validation:   result.Validation,
		OrganicCount: result.OrganicCount,
	}
	for _, wp := range result.Waypoints {
		resp.Waypoints = append(resp.Waypoints, [2]float64{wp.X, wp.Y})
	}
	httputil.WriteJSONOK(w, resp)
}

// planChart renders the last accepted plan for a robot as an echarts HTML
// page. Debug-only endpoint for eyeballing waypoint placement without the UI.
func (s *Server) planChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	robot := r.URL.Query().Get("robot")
	if robot == "" {
		robot = string(mission.RobotRed)
	}

	s.mu.Lock()
	plan, ok := s.lastPlans[mission.RobotColor(robot)]
	s.mu.Unlock()
	if !ok {
		httputil.NotFound(w, fmt.Sprintf("no plan recorded for %q yet", robot))
		return
	}

	cfg := s.optimizer.Config()
	view := viz.PlanView{
		Title:     fmt.Sprintf("%s plan %s", plan.robot.DisplayName, plan.result.RunID),
		HexColor:  plan.robot.HexColor,
		Raw:       plan.raw,
		Dense:     plan.result.DenseCurve,
		Waypoints: s.optimizer.Mapper().PathToSurface(plan.result.Waypoints),
		Width:     cfg.SurfaceWidth,
		Height:    cfg.SurfaceHeight,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viz.RenderHTML(w, view); err != nil {
		monitoring.Logf("api: failed to render plan chart: %v", err)
	}
}

// Command pathplan converts drawn robot paths into fixed-size waypoint sets.
//
// One-shot mode reads a JSON file of drawn paths keyed by robot color and
// prints the planned waypoints:
//
//	pathplan -mission 2 -paths drawn.json -plot-dir plots/
//
// Serve mode exposes the planning API over HTTP for the drawing UI:
//
//	pathplan -serve -listen :8080
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/banshee-data/pathplan/api"
	"github.com/banshee-data/pathplan/internal/config"
	"github.com/banshee-data/pathplan/internal/geom"
	"github.com/banshee-data/pathplan/internal/mission"
	"github.com/banshee-data/pathplan/internal/planner"
	"github.com/banshee-data/pathplan/internal/security"
	"github.com/banshee-data/pathplan/internal/version"
	"github.com/banshee-data/pathplan/internal/viz"
)

var (
	configPath  = flag.String("config", "", "Path to tuning config JSON (defaults apply when empty)")
	missionID   = flag.Int("mission", 1, "Mission to plan against")
	pathsFile   = flag.String("paths", "", "JSON file of drawn paths keyed by robot color")
	plotDir     = flag.String("plot-dir", "", "Write per-robot PNG plots into this directory")
	htmlDir     = flag.String("html-dir", "", "Write per-robot HTML charts into this directory")
	serve       = flag.Bool("serve", false, "Serve the planning HTTP API instead of one-shot planning")
	listen      = flag.String("listen", ":8080", "Listen address for -serve")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("pathplan %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	tuning := config.EmptyTuningConfig()
	if *configPath != "" {
		loaded, err := config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load tuning config: %v", err)
		}
		tuning = loaded
	}

	cfg := tuning.PlannerConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid planner configuration: %v", err)
	}

	optimizer := planner.New(cfg)
	missions := mission.NewManager(cfg.SurfaceWidth, cfg.SurfaceHeight)

	if *serve {
		runServer(optimizer, missions)
		return
	}

	if *pathsFile == "" {
		log.Fatal("Either -serve or -paths is required")
	}
	if err := planFile(optimizer, missions, *pathsFile); err != nil {
		log.Fatalf("Planning failed: %v", err)
	}
}

func runServer(optimizer *planner.Optimizer, missions *mission.Manager) {
	server := api.NewServer(optimizer, missions)

	httpServer := &http.Server{
		Addr:    *listen,
		Handler: server.ServeMux(),
	}

	go func() {
		log.Printf("Listening on %s", *listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Print("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// planFile plans every drawn path in the file against the selected mission
// and prints the resulting waypoint tables.
func planFile(optimizer *planner.Optimizer, missions *mission.Manager, path string) error {
	m, ok := missions.Mission(*missionID)
	if !ok {
		return fmt.Errorf("unknown mission %d (have %d missions)", *missionID, missions.Count())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read paths file: %w", err)
	}
	var drawn map[string][][2]float64
	if err := json.Unmarshal(data, &drawn); err != nil {
		return fmt.Errorf("failed to parse paths file: %w", err)
	}

	log.Printf("%s (%s): planning %d drawn paths", m.Name, m.Difficulty, len(drawn))

	for _, robot := range m.Robots {
		pairs, ok := drawn[string(robot.Color)]
		if !ok {
			log.Printf("%s: no path drawn, skipping", robot.DisplayName)
			continue
		}

		raw := make([]geom.Point, len(pairs))
		for i, p := range pairs {
			raw[i] = geom.Point{X: p[0], Y: p[1]}
		}

		result := optimizer.Plan(raw, robot.Endpoints())
		if !result.Validation.Accepted {
			log.Printf("%s", result.Validation.Reason)
			continue
		}

		log.Printf("%s: %d organic waypoints (padded to %d), run %s",
			robot.DisplayName, result.OrganicCount, len(result.Waypoints), result.RunID)
		printWaypoints(robot, result)

		if err := writeRenderings(optimizer, robot, raw, result); err != nil {
			return err
		}
	}
	return nil
}

func printWaypoints(robot mission.Robot, result planner.PlanResult) {
	fmt.Printf("%s waypoints (mm):\n", robot.DisplayName)
	for i, wp := range result.Waypoints {
		fmt.Printf("  WP%2d: (%7.1f, %7.1f)\n", i+1, wp.X, wp.Y)
	}
}

func writeRenderings(optimizer *planner.Optimizer, robot mission.Robot, raw []geom.Point, result planner.PlanResult) error {
	if *plotDir == "" && *htmlDir == "" {
		return nil
	}

	cfg := optimizer.Config()
	view := viz.PlanView{
		Title:     fmt.Sprintf("%s plan %s", robot.DisplayName, result.RunID),
		HexColor:  robot.HexColor,
		Raw:       raw,
		Dense:     result.DenseCurve,
		Waypoints: optimizer.Mapper().PathToSurface(result.Waypoints),
		Width:     cfg.SurfaceWidth,
		Height:    cfg.SurfaceHeight,
	}

	name := security.SanitizeFilename(string(robot.Color))

	if *plotDir != "" {
		if err := os.MkdirAll(*plotDir, 0755); err != nil {
			return fmt.Errorf("failed to create plot directory: %w", err)
		}
		out := filepath.Join(*plotDir, fmt.Sprintf("plan_%s.png", name))
		if err := security.ValidatePathWithinDirectory(out, *plotDir); err != nil {
			return fmt.Errorf("refusing plot path: %w", err)
		}
		if err := viz.RenderPNG(out, view); err != nil {
			return err
		}
		log.Printf("%s: wrote %s", robot.DisplayName, out)
	}

	if *htmlDir != "" {
		if err := os.MkdirAll(*htmlDir, 0755); err != nil {
			return fmt.Errorf("failed to create html directory: %w", err)
		}
		out := filepath.Join(*htmlDir, fmt.Sprintf("plan_%s.html", name))
		if err := security.ValidatePathWithinDirectory(out, *htmlDir); err != nil {
			return fmt.Errorf("refusing chart path: %w", err)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create chart file: %w", err)
		}
		if err := viz.RenderHTML(f, view); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("%s: wrote %s", robot.DisplayName, out)
	}
	return nil
}

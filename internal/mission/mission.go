// Package mission holds the static robot and mission definitions the planner
// operates against: which robots take part, where each one starts and ends
// on the drawing surface, and how missions escalate from one robot to four.
package mission

import (
	"github.com/banshee-data/pathplan/internal/geom"
	"github.com/banshee-data/pathplan/internal/planner"
)

// RobotColor identifies a robot within a mission.
type RobotColor string

const (
	RobotRed    RobotColor = "red"
	RobotGreen  RobotColor = "green"
	RobotBlue   RobotColor = "blue"
	RobotYellow RobotColor = "yellow"
)

// Robot is the configuration for a single robot: its identity and the target
// start/end positions its drawn path must connect, in surface pixels.
type Robot struct {
	Color       RobotColor `json:"color"`
	DisplayName string     `json:"display_name"`
	HexColor    string     `json:"hex_color"` // for rendering
	Start       geom.Point `json:"start"`
	End         geom.Point `json:"end"`
}

// Endpoints returns the robot's target positions in the form the planner
// consumes.
func (r Robot) Endpoints() planner.Endpoints {
	return planner.Endpoints{Owner: r.DisplayName, Start: r.Start, End: r.End}
}

// Mission is one scenario: a named set of robots with fixed start/end
// positions.
type Mission struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"`
	Robots      []Robot `json:"robots"`
}

// RobotByColor returns the mission's robot with the given color, or false
// when the mission has no such robot.
func (m Mission) RobotByColor(color RobotColor) (Robot, bool) {
	for _, r := range m.Robots {
		if r.Color == color {
			return r, true
		}
	}
	return Robot{}, false
}

// Manager resolves the built-in mission set against a concrete drawing
// surface size. Positions are defined as surface fractions so the same
// missions work on any canvas dimensions.
type Manager struct {
	surfaceWidth  float64
	surfaceHeight float64
	missions      map[int]Mission
}

// NewManager builds the mission set for the given surface dimensions.
func NewManager(surfaceWidth, surfaceHeight float64) *Manager {
	m := &Manager{
		surfaceWidth:  surfaceWidth,
		surfaceHeight: surfaceHeight,
	}
	m.missions = m.buildMissions()
	return m
}

// Mission returns the mission with the given ID, or false when it does not
// exist.
func (m *Manager) Mission(id int) (Mission, bool) {
	ms, ok := m.missions[id]
	return ms, ok
}

// Missions returns all missions ordered by ID.
func (m *Manager) Missions() []Mission {
	out := make([]Mission, 0, len(m.missions))
	for id := 1; ; id++ {
		ms, ok := m.missions[id]
		if !ok {
			break
		}
		out = append(out, ms)
	}
	return out
}

// Count returns the number of built-in missions.
func (m *Manager) Count() int { return len(m.missions) }

func (m *Manager) pos(xFrac, yFrac float64) geom.Point {
	return geom.Point{X: xFrac * m.surfaceWidth, Y: yFrac * m.surfaceHeight}
}

func (m *Manager) buildMissions() map[int]Mission {
	red := func(start, end geom.Point) Robot {
		return Robot{Color: RobotRed, DisplayName: "Red Robot", HexColor: "#FF3333", Start: start, End: end}
	}
	green := func(start, end geom.Point) Robot {
		return Robot{Color: RobotGreen, DisplayName: "Green Robot", HexColor: "#33FF33", Start: start, End: end}
	}
	blue := func(start, end geom.Point) Robot {
		return Robot{Color: RobotBlue, DisplayName: "Blue Robot", HexColor: "#3333FF", Start: start, End: end}
	}
	yellow := func(start, end geom.Point) Robot {
		return Robot{Color: RobotYellow, DisplayName: "Yellow Robot", HexColor: "#FFDD33", Start: start, End: end}
	}

	return map[int]Mission{
		1: {
			ID:          1,
			Name:        "Mission 1: Solo Navigator",
			Description: "Guide the RED robot from start to finish.",
			Difficulty:  "Easy",
			Robots: []Robot{
				red(m.pos(0.15, 0.15), m.pos(0.85, 0.85)),
			},
		},
		2: {
			ID:          2,
			Name:        "Mission 2: Dual Dance",
			Description: "Coordinate RED and GREEN robots.",
			Difficulty:  "Medium",
			Robots: []Robot{
				red(m.pos(0.15, 0.15), m.pos(0.85, 0.85)),
				green(m.pos(0.85, 0.15), m.pos(0.15, 0.85)),
			},
		},
		3: {
			ID:          3,
			Name:        "Mission 3: Triple Threat",
			Description: "Navigate three robots simultaneously.",
			Difficulty:  "Hard",
			Robots: []Robot{
				red(m.pos(0.15, 0.15), m.pos(0.85, 0.85)),
				green(m.pos(0.85, 0.15), m.pos(0.15, 0.85)),
				blue(m.pos(0.50, 0.85), m.pos(0.50, 0.15)),
			},
		},
		4: {
			ID:          4,
			Name:        "Mission 4: Quadrant Chaos",
			Description: "Control all four robots at once.",
			Difficulty:  "Expert",
			Robots: []Robot{
				red(m.pos(0.15, 0.30), m.pos(0.85, 0.70)),
				green(m.pos(0.85, 0.30), m.pos(0.15, 0.70)),
				blue(m.pos(0.30, 0.15), m.pos(0.70, 0.85)),
				yellow(m.pos(0.70, 0.15), m.pos(0.30, 0.85)),
			},
		},
	}
}

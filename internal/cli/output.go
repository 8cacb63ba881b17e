package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case Match:
		o.printMatch(v)
	case Scoreboard:
		o.printScoreboard(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Vector3 response type
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// MatchPlayer response type
type MatchPlayer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position Vector3 `json:"position"`
	Health   int     `json:"health"`
	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
}

// Match response type
type Match struct {
	PlayerCount int           `json:"player_count"`
	Players     []MatchPlayer `json:"players"`
}

// ScoreboardEntry response type
type ScoreboardEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
}

// Scoreboard response type
type Scoreboard struct {
	Entries []ScoreboardEntry `json:"entries"`
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Players (%d):\n", m.PlayerCount)
	for _, p := range m.Players {
		fmt.Printf("  - %s (%s) hp=%d k=%d d=%d at (%.1f, %.1f, %.1f)\n",
			p.Name, p.ID, p.Health, p.Kills, p.Deaths,
			p.Position.X, p.Position.Y, p.Position.Z)
	}
}

func (o *Output) printScoreboard(s Scoreboard) {
	if len(s.Entries) == 0 {
		fmt.Println("No players on the scoreboard yet")
		return
	}
	fmt.Println("Rank  Kills  Deaths  Player")
	for i, e := range s.Entries {
		fmt.Printf("%4d  %5d  %6d  %s (%s)\n", i+1, e.Kills, e.Deaths, e.Name, e.PlayerID)
	}
}

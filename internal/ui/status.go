package ui

import (
	"fmt"

	"mapgen/internal/core"
	"mapgen/internal/gen/drunkard"
)

type progressProvider interface {
	Iteration() int
	Done() bool
}

type agentProvider interface {
	Agent() drunkard.Agent
}

type reportProvider interface {
	LastReport() drunkard.Report
}

// StatusLines describes the state of sim for the previewer overlay. Optional
// details are included when sim exposes them.
func StatusLines(sim core.Sim, paused bool) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}

	if p, ok := sim.(progressProvider); ok {
		state := "running"
		switch {
		case p.Done():
			state = "done"
		case paused:
			state = "paused"
		}
		lines = append(lines, fmt.Sprintf("iteration %d (%s)", p.Iteration(), state))
	}
	if a, ok := sim.(agentProvider); ok {
		agent := a.Agent()
		lines = append(lines, fmt.Sprintf("agent (%d,%d)", agent.X, agent.Y))
	}
	if r, ok := sim.(reportProvider); ok {
		rep := r.LastReport()
		lines = append(lines, fmt.Sprintf("steps %d rooms %d bounces %d carved %d",
			rep.Steps, rep.Rooms, rep.Bounces, rep.Carved))
	}
	return lines
}

// ParamLines flattens a parameter snapshot into "Label: value" lines.
func ParamLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		lines = append(lines, "["+group.Name+"]")
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

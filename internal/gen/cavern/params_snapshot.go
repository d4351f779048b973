package cavern

import "mapgen/internal/core"

// Parameters describes the run configuration grouped by stage.
func (g *Generator) Parameters() core.ParameterSnapshot {
	c := g.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.IntParam("iterations", "Iterations", c.Iterations),
				core.Int64Param("seed", "Seed", c.Seed),
				core.FloatParam("fill", "Fill chance", c.FillChance),
			},
		},
		{
			Name: "Cellular automata",
			Params: []core.Parameter{
				core.IntParam("radius", "Radius", c.Smooth.Radius),
				core.FloatParam("threshold", "Threshold", c.Smooth.Threshold),
				core.StringParam("mode", "Mode", c.Smooth.Mode.String()),
			},
		},
		{
			Name: "Drunk agent",
			Params: []core.Parameter{
				core.IntParam("outer", "Walks", c.Carve.Outer),
				core.IntParam("inner", "Steps per walk", c.Carve.Inner),
				core.IntParam("room_x", "Room width", c.Carve.RoomSizeX),
				core.IntParam("room_y", "Room height", c.Carve.RoomSizeY),
				core.FloatParam("room_prob", "Room chance", c.Carve.ProbGenerateRoom),
				core.FloatParam("room_prob_step", "Room chance step", c.Carve.ProbIncreaseRoom),
				core.FloatParam("dir_prob", "Turn chance", c.Carve.ProbChangeDirection),
				core.FloatParam("dir_prob_step", "Turn chance step", c.Carve.ProbIncreaseChange),
			},
		},
	}}
}

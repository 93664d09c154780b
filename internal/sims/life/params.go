package life

import "life-ca/internal/core"

// Parameters describes the engine for HUDs and logs.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("height", "Height", e.cfg.Height),
				core.IntParam("width", "Width", e.cfg.Width),
				core.StringParam("boundary", "Boundary", e.cfg.Boundary.String()),
				core.StringParam("mode", "Cells", e.cfg.Mode.String()),
			},
		},
		{
			Name:   "Rule",
			Params: []core.Parameter{core.StringParam("rule", "Rule", "B3/S23")},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", e.generation),
				core.IntParam("population", "Population", e.Population()),
			},
		},
	}}
}

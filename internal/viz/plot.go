// Package viz renders property tables and terminal plots for gas states
// and sweeps.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gasthermo/internal/sweep"
	"github.com/san-kum/gasthermo/internal/thermo"
)

var plotCaptions = map[string]string{
	"cp":    "specific heat cp [J/(kg K)]",
	"cp_T":  "dcp/dT [J/(kg K^2)]",
	"h":     "specific enthalpy [J/kg]",
	"s":     "specific entropy [J/(kg K)]",
	"gamma": "ratio of specific heats",
	"rho":   "density [kg/m^3]",
}

// PlotSweep renders one property of a sweep as an ASCII graph.
func PlotSweep(res *sweep.Result, property string) (string, error) {
	data, err := res.Column(property)
	if err != nil {
		return "", err
	}

	caption, ok := plotCaptions[property]
	if !ok {
		caption = property
	}
	n := len(res.Points)
	caption = fmt.Sprintf("%s, T = %g..%g K", caption, res.Points[0].T, res.Points[n-1].T)

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	return GraphStyle.Render(graph), nil
}

type propertyRow struct {
	label string
	value float64
	unit  string
}

// PropertyTable renders the full readout of a gas state.
func PropertyTable(g *thermo.Gas) string {
	rows := []propertyRow{
		{"temperature", g.Temperature(), "K"},
		{"pressure", g.Pressure(), "Pa"},
		{"cp", g.Cp(), "J/(kg K)"},
		{"dcp/dT", g.CpDeriv(), "J/(kg K^2)"},
		{"h", g.H(), "J/kg"},
		{"s", g.S(), "J/(kg K)"},
		{"phi", g.Phi(), "J/(kg K)"},
		{"MW", g.MW(), "g/mol"},
		{"gamma", g.Gamma(), ""},
		{"R", g.R(), "J/(kg K)"},
		{"rho", g.Rho(), "kg/m^3"},
		{"nu", g.Nu(), "m^3/kg"},
		{"hf", g.Hf(), "J/kg"},
		{"cp (molar)", g.CpMole(), "J/(mol K)"},
		{"h (molar)", g.HMole(), "J/mol"},
		{"s (molar)", g.SMole(), "J/(mol K)"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(LabelStyle.Render(r.label))
		b.WriteString(ValueStyle.Render(fmt.Sprintf(" %14.6g ", r.value)))
		b.WriteString(UnitStyle.Render(r.unit))
		b.WriteString("\n")
	}
	return b.String()
}

// CompositionTable renders the nonzero species fractions of a gas.
func CompositionTable(g *thermo.Gas) string {
	reg := g.Registry()
	Y := g.MassFractions()
	X := g.X()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("species        Y (mass)       X (mole)"))
	b.WriteString("\n")
	for i := 0; i < reg.Len(); i++ {
		if Y[i] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%-10s %12.6f %14.6f\n", reg.At(i).Name, Y[i], X[i]))
	}
	return b.String()
}

package hull

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/beneathbeyond/bfs"
)

// DebugLevel selects how much the engine reports about its own run through
// its diagnostic channel. This is orthogonal to Config's four behavioral
// switches: it never changes what is computed, only what is logged while
// computing it.
type DebugLevel int

const (
	// DebugNone disables the diagnostic channel entirely (the default).
	DebugNone DebugLevel = iota
	// DebugChecks logs invariant spot-checks as they are evaluated, and each
	// mid-run lineality discovery.
	DebugChecks
	// DebugSteps logs a one-line summary per absorbed point.
	DebugSteps
	// DebugFull additionally logs each facet created on the visibility
	// border: its vertices, normal, orientation and ridge count.
	DebugFull
)

// WithDebugLevel attaches a diagnostic verbosity to the run. The engine logs
// at the debug level through its own zerolog console logger, which writes to
// os.Stderr; zerolog's global logger is not used.
func WithDebugLevel(level DebugLevel) Option {
	return func(c *Config) { c.debugLevel = level }
}

// engineLog returns a zerolog.Logger pre-tagged with this run's component
// name, or a disabled logger if DebugNone is configured — debug-level calls
// on a disabled logger are near-free, so call sites do not need to guard on
// cfg.debugLevel themselves.
func (e *Engine) engineLog() zerolog.Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Str("component", "hull").Logger()
	if e.cfg.debugLevel == DebugNone {
		l = l.Level(zerolog.Disabled)
	}
	return l
}

func (e *Engine) logStep(p int) {
	if e.cfg.debugLevel < DebugSteps {
		return
	}
	l := e.engineLog()
	l.Debug().
		Int("point", p).
		Str("state", e.state.String()).
		Int("dim", e.currentDim()).
		Int("facets", e.dg.NodeCount()).
		Msg("absorbed point")
}

func (e *Engine) logCheck(msg string, kv map[string]interface{}) {
	if e.cfg.debugLevel < DebugChecks {
		return
	}
	l := e.engineLog()
	ev := l.Debug()
	for k, v := range kv {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// checkDualConnectivity spot-checks that every live facet is reachable from
// any other via ridges — the dual graph of a bounded polyhedron's facet
// lattice is connected. It only runs a traversal when DebugChecks or above
// is configured; it never changes Compute's result.
func (e *Engine) checkDualConnectivity() {
	if e.cfg.debugLevel < DebugChecks {
		return
	}
	facets := e.dg.AllFacets()
	if len(facets) == 0 {
		return
	}
	connected, err := bfs.Connected(e.dg.Underlying(), facets[0])
	if err != nil {
		e.logCheck("dual graph connectivity check could not run", map[string]interface{}{"error": err.Error()})
		return
	}
	e.logCheck("dual graph connectivity", map[string]interface{}{
		"facets":    len(facets),
		"connected": connected,
	})
}

func (e *Engine) logFull(msg string, fid string) {
	if e.cfg.debugLevel < DebugFull {
		return
	}
	rec := e.dg.Facet(fid)
	if rec == nil {
		return
	}
	ridges, err := e.dg.FacetDegree(fid)
	if err != nil {
		ridges = -1
	}
	l := e.engineLog()
	l.Debug().
		Str("facet", fid).
		Interface("vertices", rec.Vertices.Slice()).
		Interface("normal", rec.Normal).
		Int("orientation", rec.Orientation).
		Int("ridges", ridges).
		Msg(msg)
}

package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
)

// DiagnosticsSystem publishes frame and population metrics to the status registry
// Runs every frame, including paused ones
type DiagnosticsSystem struct {
	engine.SystemBase

	statFrames *atomic.Int64
	statAlive  *atomic.Int64
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	s := &DiagnosticsSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statFrames = s.Resource.Status.Counters.Get(status.FrameCount)
	s.statAlive = s.Resource.Status.Counters.Get(status.EntityAlive)
	return s
}

func (s *DiagnosticsSystem) Init()         {}
func (s *DiagnosticsSystem) Name() string  { return "diagnostics" }
func (s *DiagnosticsSystem) Priority() int { return parameter.PriorityDiagnostics }

// Update records the frame
func (s *DiagnosticsSystem) Update() {
	s.statFrames.Add(1)
	s.statAlive.Store(int64(s.World.Count()))
}

// Package engine runs registered systems against a shared scene at a fixed
// cadence. The engine owns the scene through a counted handle, so renderers
// and tools can hold it past engine shutdown.
package engine

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/vrekit/handle"
	"github.com/plus3/vrekit/scene"
)

// Frame carries the per-tick state handed to each system.
type Frame struct {
	DeltaTime float64
	Scene     *scene.Scene
	Commands  *scene.Commands
}

// System represents a behavior that runs once per tick. User-defined systems
// implement this interface and may keep state fields that persist between
// frames.
type System interface {
	Update(frame *Frame)
}

// EngineStats provides statistics about engine execution.
type EngineStats struct {
	SystemCount int
	TotalTicks  int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name          string
	TickCount     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type systemStatsInternal struct {
	name          string
	tickCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Engine manages and executes systems in registration order.
type Engine struct {
	scene       handle.Ref[scene.Scene]
	commands    *scene.Commands
	systems     []System
	systemStats []*systemStatsInternal
}

// New creates an engine with a fresh scene.
func New() *Engine {
	return &Engine{
		scene: handle.New(*scene.New(), func(s *scene.Scene) {
			s.Clear()
		}),
		commands: scene.NewCommands(),
		systems:  make([]System, 0),
	}
}

// Register adds a system to the engine.
func (e *Engine) Register(system System) {
	e.systems = append(e.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	e.systemStats = append(e.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Scene returns the scene the engine drives.
func (e *Engine) Scene() *scene.Scene {
	return e.scene.Get()
}

// SceneHandle returns a new counted handle to the scene. The caller must
// release it when done.
func (e *Engine) SceneHandle() handle.Ref[scene.Scene] {
	return e.scene.Clone()
}

// Once executes all registered systems once with the given delta time, then
// flushes buffered commands.
func (e *Engine) Once(dt float64) {
	frame := &Frame{
		DeltaTime: dt,
		Scene:     e.scene.Get(),
		Commands:  e.commands,
	}

	for i, system := range e.systems {
		start := time.Now()
		system.Update(frame)
		duration := time.Since(start)

		stats := e.systemStats[i]
		stats.tickCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	e.commands.Flush(e.scene.Get())
}

// Run executes all systems repeatedly at the given interval until the context
// is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			e.Once(dt)
		}
	}
}

// Shutdown releases the engine's handle on the scene. Any outstanding handles
// obtained through SceneHandle keep the scene alive.
func (e *Engine) Shutdown() {
	e.scene.Release()
}

// Stats returns statistics about system execution.
func (e *Engine) Stats() *EngineStats {
	stats := &EngineStats{
		SystemCount: len(e.systems),
		Systems:     make([]SystemStats, len(e.systemStats)),
	}

	var totalTicks int64
	for i, internal := range e.systemStats {
		avgDuration := time.Duration(0)
		if internal.tickCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.tickCount)
		}

		stats.Systems[i] = SystemStats{
			Name:          internal.name,
			TickCount:     internal.tickCount,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalTicks += internal.tickCount
	}

	stats.TotalTicks = totalTicks
	return stats
}

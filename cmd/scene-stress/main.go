package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/vrekit/data"
	"github.com/plus3/vrekit/engine"
	"github.com/plus3/vrekit/scene"
)

// driftSystem mutates every node's transform in place each tick.
type driftSystem struct {
	rng *rand.Rand
}

func (d *driftSystem) Update(frame *engine.Frame) {
	dt := float32(frame.DeltaTime)
	for _, node := range frame.Scene.Nodes() {
		node.Transform[12] += (d.rng.Float32() - 0.5) * dt
		node.Transform[13] += (d.rng.Float32() - 0.5) * dt
		node.Transform[14] += (d.rng.Float32() - 0.5) * dt
	}
}

// churnSystem removes a slice of the population and respawns it through the
// command buffer, exercising the compacting removal path every tick.
type churnSystem struct {
	rng     *rand.Rand
	rate    int
	mesh    data.Id
	ids     []data.Id
	Removed int64
	Spawned int64
}

func (c *churnSystem) Update(frame *engine.Frame) {
	c.ids = c.ids[:0]
	for id := range frame.Scene.Nodes() {
		c.ids = append(c.ids, id)
	}

	for i := 0; i < c.rate && len(c.ids) > 0; i++ {
		victim := c.ids[c.rng.Intn(len(c.ids))]
		frame.Commands.Remove(victim)
		c.Removed++
	}

	for i := 0; i < c.rate; i++ {
		frame.Commands.Spawn(scene.Node{
			Name: "churn",
			Mesh: c.mesh,
			Transform: scene.Translation(
				c.rng.Float32()*100,
				c.rng.Float32()*100,
				c.rng.Float32()*100,
			),
		})
		c.Spawned++
	}
}

// lookupSystem hammers random id lookups and node ref resolution.
type lookupSystem struct {
	rng     *rand.Rand
	lookups int
	Hits    int64
	Misses  int64
}

func (l *lookupSystem) Update(frame *engine.Frame) {
	maxId := data.Id(frame.Scene.NodeCount()) * 3
	if maxId == 0 {
		return
	}

	for i := 0; i < l.lookups; i++ {
		id := data.Id(l.rng.Int63n(int64(maxId))) + 1
		if frame.Scene.Node(id) != nil {
			l.Hits++
			if ref := frame.Scene.CreateNodeRef(id); ref != nil {
				frame.Scene.ResolveNodeRef(ref)
			}
		} else {
			l.Misses++
		}
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	nodeCount := flag.Int("nodes", 10000, "The initial number of nodes to create.")
	churnRate := flag.Int("churn", 100, "Nodes removed and respawned per tick.")
	lookups := flag.Int("lookups", 1000, "Random id lookups per tick.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting scene stress test...")

	// 1. Setup engine and systems
	e := engine.New()
	defer e.Shutdown()

	s := e.Scene()
	mesh := s.CreateMesh(scene.Mesh{Name: "stress-cube", VertexCount: 8, IndexCount: 36})

	rng := rand.New(rand.NewSource(1))
	churn := &churnSystem{rng: rng, rate: *churnRate, mesh: mesh}
	lookup := &lookupSystem{rng: rng, lookups: *lookups}

	e.Register(&driftSystem{rng: rng})
	e.Register(churn)
	e.Register(lookup)

	// 2. Populate the scene
	log.Printf("Populating scene with %d nodes...\n", *nodeCount)
	for i := 0; i < *nodeCount; i++ {
		s.Spawn(scene.Node{
			Name:      "node",
			Mesh:      mesh,
			Transform: scene.Translation(rng.Float32()*100, rng.Float32()*100, rng.Float32()*100),
		})
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Nodes:          *nodeCount,
		ChurnRate:      *churnRate,
		Lookups:        *lookups,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			tickStart := time.Now()
			e.Once(float64(deltaTime) / float64(time.Second))
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.NodesRemoved = churn.Removed
	report.NodesSpawned = churn.Spawned
	report.LookupHits = lookup.Hits
	report.LookupMisses = lookup.Misses
	report.FinalStats = s.CollectStats()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

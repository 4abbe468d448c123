package world

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jasonthepenguin/boarscape/common"
	"github.com/jasonthepenguin/boarscape/internal/logger"
)

const (
	// chunkSize is the preferred side length of a generation chunk.
	chunkSize float32 = 16.0

	// maxChunksPerSide caps the chunk grid for very large worlds.
	maxChunksPerSide = 64

	// treeMinSpacing is the minimum distance between trees in one chunk.
	treeMinSpacing float32 = 2.2

	// placementTries bounds rejection sampling per placed feature. A
	// feature whose candidates all land in the clearing or outside the
	// margin is dropped.
	placementTries = 8
)

// Stream lanes for Hash2D. Chunk contents hash on non-negative (cx, cz);
// negative lanes keep the assignment and cloud streams from colliding with
// any chunk.
const (
	laneClouds = -1
	laneTrees  = -2
	laneRocks  = -3
)

// GenerateParams selects what Generate builds. Zero values fall back to
// documented defaults rather than failing: a non-positive HalfSize becomes
// DefaultBoundsHalfSize, negative counts and distances become zero.
type GenerateParams struct {
	// Seed fully determines the generated world.
	Seed uint64

	// HalfSize is half the side length of the square play area.
	HalfSize float32

	// GroundY is the walkable ground height.
	GroundY float32

	// TreeCount, RockCount, and CloudCount request feature totals. The
	// placed tree and rock counts may come in slightly under when
	// candidates keep landing in the clearing or outside the margin.
	TreeCount  int
	RockCount  int
	CloudCount int

	// SpawnClearing keeps a radius around the origin free of trees and
	// rocks so the character never spawns inside an obstacle.
	SpawnClearing float32

	// Margin keeps features away from the world edge by the same distance
	// the bounds clamp keeps the character away.
	Margin float32
}

// generator holds the generation-only settings applied by options.
type generator struct {
	workers int
	log     logger.Logger
	wind    mgl32.Vec2
}

// GenerateOption is a functional option for configuring generation.
type GenerateOption func(*generator)

// WithWorkers overrides the number of pool workers used for chunk
// generation. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: worker count, values below 1 are raised to 1
//
// Returns:
//   - GenerateOption: functional option to set the worker count
func WithWorkers(n int) GenerateOption {
	return func(g *generator) {
		g.workers = max(n, 1)
	}
}

// WithLogger sets the logger generation reports through.
//
// Parameters:
//   - log: destination logger
//
// Returns:
//   - GenerateOption: functional option to set the logger
func WithLogger(log logger.Logger) GenerateOption {
	return func(g *generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithWind sets the horizontal wind vector driving cloud drift.
//
// Parameters:
//   - wind: wind direction and strength, (x, z) world axes
//
// Returns:
//   - GenerateOption: functional option to set the wind
func WithWind(wind mgl32.Vec2) GenerateOption {
	return func(g *generator) {
		g.wind = wind
	}
}

// chunkResult carries one chunk's features back from its pool task.
type chunkResult struct {
	trees []Tree
	rocks []Rock
}

// Generate builds a world from params, deterministically per seed. The play
// area is cut into chunks; every tree and rock is hashed to a chunk up
// front, each populated chunk runs as one pool task with its own random
// stream, and results merge in grid order. Worker count and task scheduling
// therefore never change the output.
//
// Parameters:
//   - params: what to build, see GenerateParams
//   - options: functional options to configure generation
//
// Returns:
//   - *World: the generated world
func Generate(params GenerateParams, options ...GenerateOption) *World {
	g := &generator{
		workers: max(runtime.NumCPU()-1, 1),
		log:     logger.Nop(),
		wind:    mgl32.Vec2{1, 0.2},
	}
	for _, option := range options {
		option(g)
	}

	if params.HalfSize <= 0 {
		params.HalfSize = DefaultBoundsHalfSize
	}
	if params.SpawnClearing < 0 {
		params.SpawnClearing = 0
	}
	if params.Margin < 0 {
		params.Margin = 0
	}
	params.TreeCount = max(params.TreeCount, 0)
	params.RockCount = max(params.RockCount, 0)
	params.CloudCount = max(params.CloudCount, 0)

	start := time.Now()

	span := chunkSize
	if params.HalfSize*2 > chunkSize*maxChunksPerSide {
		span = params.HalfSize * 2 / maxChunksPerSide
	}
	chunksPerSide := int(math.Ceil(float64(params.HalfSize * 2 / span)))
	if chunksPerSide < 1 {
		chunksPerSide = 1
	}
	numChunks := chunksPerSide * chunksPerSide

	treeAssign := make([]int, numChunks)
	for i := 0; i < params.TreeCount; i++ {
		treeAssign[int(common.Hash2D(params.Seed, laneTrees, i)%uint64(numChunks))]++
	}
	rockAssign := make([]int, numChunks)
	for i := 0; i < params.RockCount; i++ {
		rockAssign[int(common.Hash2D(params.Seed, laneRocks, i)%uint64(numChunks))]++
	}

	results := make([]chunkResult, numChunks)
	pool := worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	var wg sync.WaitGroup
	taskID := 0
	for cz := 0; cz < chunksPerSide; cz++ {
		for cx := 0; cx < chunksPerSide; cx++ {
			idx := cz*chunksPerSide + cx
			nTrees, nRocks := treeAssign[idx], rockAssign[idx]
			if nTrees == 0 && nRocks == 0 {
				continue
			}

			wg.Add(1)
			ccx, ccz, cidx := cx, cz, idx // capture for closure
			id := taskID
			taskID++
			pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					results[cidx] = generateChunk(params, span, ccx, ccz, nTrees, nRocks)
					return nil, nil
				},
			})
		}
	}
	wg.Wait()

	w := &World{
		seed:     params.Seed,
		groundY:  params.GroundY,
		halfSize: params.HalfSize,
		wind:     g.wind,
	}
	for idx := range results {
		w.trees = append(w.trees, results[idx].trees...)
		w.rocks = append(w.rocks, results[idx].rocks...)
	}
	for _, t := range w.trees {
		w.colliders = append(w.colliders, Collider{
			Position: mgl32.Vec2{t.Position.X(), t.Position.Z()},
			Radius:   t.TrunkRadius,
		})
	}

	w.clouds = generateClouds(params)

	g.log.Info("generated world",
		logger.Field{Key: "seed", Value: params.Seed},
		logger.Field{Key: "trees", Value: len(w.trees)},
		logger.Field{Key: "rocks", Value: len(w.rocks)},
		logger.Field{Key: "clouds", Value: len(w.clouds)},
		logger.Field{Key: "chunks", Value: taskID},
		logger.Field{Key: "duration", Value: time.Since(start)},
	)
	return w
}

// generateChunk populates one chunk from its own random stream. Hard
// constraints (bounds margin, spawn clearing) reject candidates outright;
// tree spacing is checked within the chunk only.
func generateChunk(params GenerateParams, span float32, cx, cz, nTrees, nRocks int) chunkResult {
	rng := common.NewRand(common.Hash2D(params.Seed, cx, cz))

	minX := -params.HalfSize + float32(cx)*span
	minZ := -params.HalfSize + float32(cz)*span
	spanX := min(span, params.HalfSize-minX)
	spanZ := min(span, params.HalfSize-minZ)

	limit := params.HalfSize - params.Margin
	clearingSqr := params.SpawnClearing * params.SpawnClearing

	var res chunkResult
	for i := 0; i < nTrees; i++ {
		for attempt := 0; attempt < placementTries; attempt++ {
			x := minX + rng.Float32()*spanX
			z := minZ + rng.Float32()*spanZ
			if x < -limit || x > limit || z < -limit || z > limit {
				continue
			}
			if x*x+z*z < clearingSqr {
				continue
			}
			if !spacingOK(res.trees, x, z) {
				continue
			}
			res.trees = append(res.trees, Tree{
				Position:     mgl32.Vec3{x, params.GroundY, z},
				TrunkRadius:  rng.RangeF(0.35, 0.7),
				Height:       rng.RangeF(4.5, 9.0),
				CanopyRadius: rng.RangeF(1.6, 3.4),
				Shade:        uint8(120 + rng.Intn(100)),
			})
			break
		}
	}
	for i := 0; i < nRocks; i++ {
		for attempt := 0; attempt < placementTries; attempt++ {
			x := minX + rng.Float32()*spanX
			z := minZ + rng.Float32()*spanZ
			if x < -limit || x > limit || z < -limit || z > limit {
				continue
			}
			if x*x+z*z < clearingSqr {
				continue
			}
			res.rocks = append(res.rocks, Rock{
				Position: mgl32.Vec3{x, params.GroundY, z},
				Radius:   rng.RangeF(0.3, 0.9),
				Shade:    uint8(110 + rng.Intn(60)),
			})
			break
		}
	}
	return res
}

func spacingOK(trees []Tree, x, z float32) bool {
	for i := range trees {
		dx := trees[i].Position.X() - x
		dz := trees[i].Position.Z() - z
		if dx*dx+dz*dz < treeMinSpacing*treeMinSpacing {
			return false
		}
	}
	return true
}

// generateClouds draws from its own stream so changing tree or rock counts
// never reshuffles the sky.
func generateClouds(params GenerateParams) []Cloud {
	if params.CloudCount == 0 {
		return nil
	}

	rng := common.NewRand(common.Hash2D(params.Seed, laneClouds, 0))
	clouds := make([]Cloud, 0, params.CloudCount)
	for i := 0; i < params.CloudCount; i++ {
		clouds = append(clouds, Cloud{
			Position: mgl32.Vec3{
				rng.RangeF(-params.HalfSize, params.HalfSize),
				rng.RangeF(18, 30),
				rng.RangeF(-params.HalfSize, params.HalfSize),
			},
			Size: mgl32.Vec3{
				rng.RangeF(6, 14),
				rng.RangeF(1.5, 3),
				rng.RangeF(4, 9),
			},
			Speed: rng.RangeF(0.5, 1.5),
		})
	}
	return clouds
}

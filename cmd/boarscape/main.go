// Command boarscape runs the demo: a procedurally scattered glade, a
// third-person boar driven with WASD and an orbit camera, and a herd of
// piglets that tag along, rendered with raylib.
package main

import (
	"flag"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jasonthepenguin/boarscape/common"
	"github.com/jasonthepenguin/boarscape/engine"
	"github.com/jasonthepenguin/boarscape/engine/actor"
	"github.com/jasonthepenguin/boarscape/engine/camera"
	"github.com/jasonthepenguin/boarscape/engine/input"
	"github.com/jasonthepenguin/boarscape/engine/npc"
	"github.com/jasonthepenguin/boarscape/engine/player"
	"github.com/jasonthepenguin/boarscape/engine/window"
	"github.com/jasonthepenguin/boarscape/engine/world"
	"github.com/jasonthepenguin/boarscape/internal/config"
	"github.com/jasonthepenguin/boarscape/internal/logger"
)

var (
	skyColor    = rl.NewColor(132, 184, 234, 255)
	grassColor  = rl.NewColor(96, 160, 74, 255)
	trunkColor  = rl.NewColor(110, 82, 48, 255)
	boarColor   = rl.NewColor(92, 64, 51, 255)
	snoutColor  = rl.NewColor(186, 140, 120, 255)
	pigletColor = rl.NewColor(236, 168, 178, 255)
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file, empty for defaults")
	profile := flag.Bool("profile", false, "log frame stats once per second")
	flag.Parse()

	bootLog, err := logger.NewFromEnv()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog.Fatal("load config", logger.Field{Key: "error", Value: err})
	}

	log, err := logger.NewZapLogger(cfg.Logging)
	if err != nil {
		bootLog.Fatal("build logger", logger.Field{Key: "error", Value: err})
	}
	defer log.Sync()

	// ── World ───────────────────────────────────────────────────────────
	genOptions := []world.GenerateOption{
		world.WithLogger(log),
		world.WithWind(mgl32.Vec2{cfg.World.WindX, cfg.World.WindZ}),
	}
	if cfg.World.Workers > 0 {
		genOptions = append(genOptions, world.WithWorkers(cfg.World.Workers))
	}
	glade := world.Generate(world.GenerateParams{
		Seed:          cfg.World.Seed,
		HalfSize:      cfg.World.HalfSize,
		GroundY:       cfg.World.GroundY,
		TreeCount:     cfg.World.TreeCount,
		RockCount:     cfg.World.RockCount,
		CloudCount:    cfg.World.CloudCount,
		SpawnClearing: cfg.World.SpawnClearing,
		Margin:        cfg.World.Margin,
	}, genOptions...)

	// ── Actors ──────────────────────────────────────────────────────────
	boar := actor.NewActor(
		actor.WithName("Rooter"),
		actor.WithPosition(mgl32.Vec3{0, cfg.World.GroundY, 0}),
	)

	// The herd draws from its own stream lane so tuning tree or rock
	// counts never reshuffles piglet spawns.
	herdSeed := common.Hash2D(cfg.World.Seed, -9, 0)
	herd := npc.NewSystem(glade, boar, cfg.NPC.Count, herdSeed, npcOptions(cfg)...)

	// ── Window + Camera ─────────────────────────────────────────────────
	win := window.New(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithTargetFPS(cfg.Window.TargetFPS),
		window.WithClearColor(skyColor),
	)
	defer win.Close()

	cam := rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       55,
		Projection: rl.CameraPerspective,
	}

	// ── Input + Controller ──────────────────────────────────────────────
	source := input.NewRaylibSource()
	ctrl, err := player.New(boar, camera.NewRaylibHandle(&cam), glade, source,
		player.WithConfig(cfg.ToPlayerConfig()),
		player.WithJumpCallback(func() {
			log.Debug("jump", logger.Field{Key: "actor", Value: boar.Name()})
		}),
		player.WithMovementChangeCallback(func(moving bool) {
			log.Debug("movement change", logger.Field{Key: "moving", Value: moving})
		}),
	)
	if err != nil {
		log.Fatal("build controller", logger.Field{Key: "error", Value: err})
	}
	defer ctrl.Dispose()

	// ── Engine ──────────────────────────────────────────────────────────
	// Poll is registered first so the simulation callbacks behind it
	// consume this frame's input, not last frame's.
	eng := engine.NewEngine(
		engine.WithLogger(log),
		engine.WithProfiling(*profile),
		engine.WithTickCallback(func(_ float32) { source.Poll() }),
	)
	eng.AddTickCallback(ctrl.Update)
	eng.AddTickCallback(herd.Update)
	eng.AddTickCallback(glade.Update)

	log.Info("starting",
		logger.Field{Key: "seed", Value: glade.Seed()},
		logger.Field{Key: "trees", Value: len(glade.Trees())},
		logger.Field{Key: "piglets", Value: len(herd.NPCs())},
	)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  boarscape                                           ║")
	fmt.Println("║  WASD=Move  Shift=Run  Space=Jump                    ║")
	fmt.Println("║  Left-drag=Orbit  Scroll=Zoom  Esc=Quit              ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	// ── Main Loop ───────────────────────────────────────────────────────
	for !win.ShouldClose() {
		eng.Step(win.FrameTime())

		win.BeginFrame()

		rl.BeginMode3D(cam)
		drawWorld(glade)
		drawBoar(boar)
		drawHerd(herd)
		rl.EndMode3D()

		drawNametags(cam, herd)
		drawHUD(ctrl, herd)
		win.EndFrame()
	}

	log.Info("shutting down",
		logger.Field{Key: "frames", Value: eng.FrameCount()},
	)
}

// npcOptions maps the npc config section onto system options, leaving the
// package defaults in place for unset values.
//
// Parameters:
//   - cfg: the loaded configuration
//
// Returns:
//   - []npc.SystemOption: options for npc.NewSystem
func npcOptions(cfg *config.Config) []npc.SystemOption {
	var options []npc.SystemOption
	if cfg.NPC.FollowStart > 0 && cfg.NPC.KeepDistance > 0 {
		options = append(options, npc.WithFollowRange(cfg.NPC.FollowStart, cfg.NPC.KeepDistance))
	}
	if cfg.NPC.FollowSpeed > 0 || cfg.NPC.GrazeSpeed > 0 {
		options = append(options, npc.WithSpeeds(cfg.NPC.FollowSpeed, cfg.NPC.GrazeSpeed))
	}
	if cfg.NPC.WanderRadius > 0 {
		options = append(options, npc.WithWanderRadius(cfg.NPC.WanderRadius))
	}
	if len(cfg.NPC.Names) > 0 {
		options = append(options, npc.WithNames(cfg.NPC.Names...))
	}
	return options
}

// rlVec converts an mgl32 vector to raylib's.
func rlVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// drawWorld renders the ground plane, trees, rocks, and clouds.
func drawWorld(w *world.World) {
	half := w.BoundsHalfSize()
	rl.DrawPlane(rl.NewVector3(0, w.GroundY(), 0), rl.NewVector2(half*2, half*2), grassColor)

	for _, t := range w.Trees() {
		rl.DrawCylinder(rlVec(t.Position), t.TrunkRadius*0.75, t.TrunkRadius, t.Height, 8, trunkColor)
		canopy := rl.NewVector3(t.Position.X(), t.Position.Y()+t.Height, t.Position.Z())
		rl.DrawSphere(canopy, t.CanopyRadius, rl.NewColor(34, t.Shade, 48, 255))
	}
	for _, r := range w.Rocks() {
		center := rl.NewVector3(r.Position.X(), r.Position.Y()+r.Radius*0.3, r.Position.Z())
		rl.DrawSphere(center, r.Radius, rl.NewColor(r.Shade, r.Shade, r.Shade, 255))
	}
	for _, c := range w.Clouds() {
		size := rl.Vector3{X: c.Size.X(), Y: c.Size.Y(), Z: c.Size.Z()}
		rl.DrawCubeV(rlVec(c.Position), size, rl.Fade(rl.White, 0.75))
	}
}

// drawBoar renders the boar as three spheres laid out along its facing.
func drawBoar(boar actor.Actor) {
	pos := boar.Position()
	fwd := boar.Orientation().Rotate(mgl32.Vec3{0, 0, 1})

	body := pos.Add(mgl32.Vec3{0, 0.55, 0})
	head := body.Add(fwd.Mul(0.7)).Add(mgl32.Vec3{0, 0.15, 0})
	snout := body.Add(fwd.Mul(1.05)).Add(mgl32.Vec3{0, 0.05, 0})

	rl.DrawSphere(rlVec(body), 0.55, boarColor)
	rl.DrawSphere(rlVec(head), 0.38, boarColor)
	rl.DrawSphere(rlVec(snout), 0.16, snoutColor)
}

// drawHerd renders the piglets. The walk bob is presentation only and is
// applied here from the accumulated phase, never to simulated positions.
func drawHerd(herd *npc.System) {
	for _, p := range herd.NPCs() {
		bob := float32(math.Abs(math.Sin(float64(p.Phase)))) * 0.06
		fwd := mgl32.Vec3{
			float32(math.Sin(float64(p.Facing))),
			0,
			float32(math.Cos(float64(p.Facing))),
		}

		body := p.Position.Add(mgl32.Vec3{0, 0.3 + bob, 0})
		head := body.Add(fwd.Mul(0.34)).Add(mgl32.Vec3{0, 0.08, 0})

		rl.DrawSphere(rlVec(body), 0.3, pigletColor)
		rl.DrawSphere(rlVec(head), 0.2, pigletColor)
	}
}

// drawNametags projects each piglet's name above its head. Piglets behind
// the camera or off screen are skipped.
//
// Parameters:
//   - cam: the camera used for the 3D pass
//   - herd: the piglet system to label
func drawNametags(cam rl.Camera3D, herd *npc.System) {
	facing := rl.Vector3Subtract(cam.Target, cam.Position)
	for _, p := range herd.NPCs() {
		anchor := rl.NewVector3(p.Position.X(), p.Position.Y()+0.95, p.Position.Z())
		if rl.Vector3DotProduct(rl.Vector3Subtract(anchor, cam.Position), facing) <= 0 {
			continue
		}

		screen := rl.GetWorldToScreen(anchor, cam)
		if screen.X < 0 || screen.Y < 0 ||
			screen.X > float32(rl.GetScreenWidth()) || screen.Y > float32(rl.GetScreenHeight()) {
			continue
		}

		width := rl.MeasureText(p.Name, 10)
		rl.DrawText(p.Name, int32(screen.X)-width/2, int32(screen.Y), 10, rl.White)
	}
}

// drawHUD renders the frame rate, the boar's ground state and speed, and a
// herd summary.
func drawHUD(ctrl player.Controller, herd *npc.System) {
	rl.DrawFPS(10, 10)

	vel := ctrl.Locomotion().Velocity()
	speed := mgl32.Vec2{vel.X(), vel.Z()}.Len()
	rl.DrawText(fmt.Sprintf("%s  %.1f m/s", ctrl.Locomotion().State(), speed), 10, 34, 20, rl.White)

	following := 0
	for _, p := range herd.NPCs() {
		if p.State == npc.StateFollowing {
			following++
		}
	}
	rl.DrawText(
		fmt.Sprintf("herd: %d following, %d grazing", following, len(herd.NPCs())-following),
		10, 58, 20, rl.White,
	)
}

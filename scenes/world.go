package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dashblade/assets"
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/entities"
	"github.com/automoto/dashblade/layers"
	"github.com/automoto/dashblade/systems"
	"github.com/automoto/dashblade/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	spaceCellSize = 16
	wallThickness = 16
)

// Services are the scene's external collaborators. Frames, Audio and
// Settings may be nil; the scene then runs without sprites, sound or
// saved settings.
type Services struct {
	Config   *cfg.Config
	Log      *zap.Logger
	Frames   *assets.Library
	Audio    *assets.AudioLoader
	Settings *systems.SettingsStore
}

// WorldScene is the single gameplay scene: a flat stage with the player.
type WorldScene struct {
	svc  Services
	once sync.Once

	ecs    *ecs.ECS
	layers *layers.Manager
	clock  *systems.Clock
	env    *systems.Env
	player *entities.Player
	sink   *systems.EbitenAudio
	dt     float64
}

func NewWorldScene(svc Services) *WorldScene {
	if svc.Log == nil {
		svc.Log = zap.NewNop()
	}
	return &WorldScene{svc: svc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.dt = ws.clock.Tick()
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close tears the scene down, releasing every hosted object.
func (ws *WorldScene) Close() {
	if ws.layers != nil {
		ws.layers.Clear()
	}
	if ws.sink != nil {
		ws.sink.Close()
	}
}

// Player returns the player entity once the scene is configured.
func (ws *WorldScene) Player() *entities.Player {
	return ws.player
}

func (ws *WorldScene) configure() {
	c := ws.svc.Config
	log := ws.svc.Log

	e := ecs.NewECS(donburi.NewWorld())
	ws.ecs = e
	ws.clock = systems.NewClock(c.Clock.TPS, c.Clock.MaxStep, nil)
	ws.layers = layers.NewManager(cfg.LayerCount)

	// World geometry: a resolv space holding the ground strip and the two
	// bounding walls.
	worldW := int(c.Physics.MaxX - c.Physics.MinX)
	factory.CreateSpace(e, worldW+2*wallThickness, c.Height, spaceCellSize, spaceCellSize)
	factory.CreateGround(e, c.Physics.MinX, c.Physics.MaxX, c.Physics.GroundY, float64(c.Height)-c.Physics.GroundY)
	factory.CreateWall(e, c.Physics.MinX-wallThickness, 0, wallThickness, c.Physics.GroundY)
	factory.CreateWall(e, c.Physics.MaxX, 0, wallThickness, c.Physics.GroundY)

	camera := components.Camera.Get(factory.CreateCamera(e))
	input := systems.GetOrCreateInput(e)
	systems.GetOrCreatePause(e).ShowDebug = c.Debug.Enabled

	settings := systems.GetOrCreateSettings(e)
	*settings = ws.svc.Settings.Load(systems.DefaultSettings(c.Audio))

	var frames components.FrameSource
	if ws.svc.Frames != nil {
		ws.svc.Frames.Preload()
		frames = ws.svc.Frames
	}

	ws.env = &systems.Env{
		Config: c,
		Input:  input,
		Camera: camera,
		Log:    log.Named("player"),
		Effects: &entities.Effects{
			Manager: ws.layers,
			Layer:   int(cfg.LayerEffects),
			Defs:    c.Animations,
			Frames:  frames,
			Camera:  camera,
		},
	}

	var target systems.SettingsTarget
	if ws.svc.Audio != nil {
		audioData := systems.GetOrCreateAudio(e, c.Audio)
		ws.sink = systems.NewEbitenAudio(ws.svc.Audio, c.Sound, audioData, log.Named("audio"))
		ws.sink.PreloadAllSFX()
		ws.env.Audio = ws.sink
		target = ws.sink
	}
	systems.ApplySettings(*settings, target)
	if ws.sink != nil {
		ws.sink.PlayMusic(c.Sound.StageMusic)
	}

	ws.insert(entities.NewBackdrop(camera, c.Width, c.Height, c.Physics.GroundY), cfg.LayerBackground)
	ws.insert(entities.NewGround(camera, c.Width, c.Height, c.Physics.GroundY), cfg.LayerGround)
	ws.player = entities.NewPlayer(e, ws.env, frames)
	ws.insert(ws.player, cfg.LayerDefault)

	// Systems that always run
	e.AddSystem(func(e *ecs.ECS) {
		in := systems.UpdateInput(e, c.Input)
		pause := systems.UpdatePause(e, in)
		if ws.sink != nil {
			ws.sink.SetPaused(pause.IsPaused)
		}
		if pause.IsPaused {
			ws.clock.Reset()
		}
		systems.UpdateSettings(e, in, target, ws.svc.Settings, log)
	})
	// Gameplay
	e.AddSystem(systems.WithPauseCheck(func(*ecs.ECS) {
		ws.layers.Update(ws.dt)
	}))
	e.AddSystem(func(*ecs.ECS) {
		if ws.sink != nil {
			ws.sink.Flush()
		}
	})

	e.AddRenderer(cfg.LayerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		ws.layers.Draw(screen)
	})
	e.AddRenderer(cfg.LayerHUD, func(e *ecs.ECS, screen *ebiten.Image) {
		systems.DrawDebug(e, screen, camera.Scroll, systems.PlayerDebugLines(ws.player.Entry()))
	})
	e.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	log.Info("scene ready",
		zap.Int("objects", ws.layers.Len()),
		zap.Float64("ground_y", c.Physics.GroundY))
}

func (ws *WorldScene) insert(obj layers.Object, layer ecs.LayerID) {
	if err := ws.layers.Insert(obj, int(layer)); err != nil {
		ws.svc.Log.Error("insert object", zap.Error(err))
	}
}

package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/dashblade/assets"
	"github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/fonts"
	"github.com/automoto/dashblade/logging"
	"github.com/automoto/dashblade/scenes"
	"github.com/automoto/dashblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

const appName = "dashblade"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	cfg    *config.Config
	bounds image.Rectangle
	scene  Scene
}

func NewGame(cfg *config.Config, scene Scene) *Game {
	return &Game{cfg: cfg, scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.cfg.Width, g.cfg.Height)
	return g.cfg.Width, g.cfg.Height
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	assetsDir := flag.String("assets", "", "override the assets directory")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	fsys := os.DirFS(cfg.AssetsDir)
	audioCtx := audio.NewContext(cfg.Audio.SampleRate)

	// Persistence is optional; the game runs on defaults without it
	store, err := systems.OpenSettingsStore(appName, logger.Named("settings"))
	if err != nil {
		logger.Warn("settings persistence unavailable", zap.Error(err))
	}

	scene := scenes.NewWorldScene(scenes.Services{
		Config:   cfg,
		Log:      logger,
		Frames:   assets.NewLibrary(fsys, cfg.Animations, logger.Named("assets")),
		Audio:    assets.NewAudioLoader(fsys, audioCtx),
		Settings: store,
	})
	defer scene.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(cfg.Clock.TPS)

	logger.Info("starting",
		zap.String("assets", cfg.AssetsDir),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	if err := ebiten.RunGame(NewGame(cfg, scene)); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

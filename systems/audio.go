package systems

import (
	"github.com/automoto/dashblade/assets"
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// EbitenAudio is the AudioSink backed by ebiten's audio package. Cues are
// queued on the singleton AudioData during the update and played by
// Flush, so the simulation never waits on decoding.
type EbitenAudio struct {
	loader *assets.AudioLoader
	sound  cfg.SoundConfig
	data   *components.AudioData
	log    *zap.Logger

	music  *audio.Player
	loops  map[cfg.SoundID]*audio.Player
	warned map[string]bool
	paused bool
}

// NewEbitenAudio creates the sink. data is the scene's AudioData singleton.
func NewEbitenAudio(loader *assets.AudioLoader, sound cfg.SoundConfig, data *components.AudioData, log *zap.Logger) *EbitenAudio {
	if log == nil {
		log = zap.NewNop()
	}
	return &EbitenAudio{
		loader: loader,
		sound:  sound,
		data:   data,
		log:    log,
		loops:  make(map[cfg.SoundID]*audio.Player),
		warned: make(map[string]bool),
	}
}

// Play queues a cue.
func (a *EbitenAudio) Play(id cfg.SoundID, loop bool, volume float64) {
	a.data.PendingSFX = append(a.data.PendingSFX, components.SoundCue{ID: id, Loop: loop, Volume: volume})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func (a *EbitenAudio) PreloadAllSFX() {
	for _, path := range a.sound.SFXPaths {
		if err := a.loader.PreloadSFX(path); err != nil {
			a.warnOnce(path, err)
		}
	}
}

// Flush plays every queued cue.
func (a *EbitenAudio) Flush() {
	for _, cue := range a.data.PendingSFX {
		a.playCue(cue)
	}
	a.data.PendingSFX = a.data.PendingSFX[:0]
}

func (a *EbitenAudio) playCue(cue components.SoundCue) {
	if a.data.Muted || a.data.SFXVolume <= 0 {
		return
	}
	path, ok := a.sound.SFXPaths[cue.ID]
	if !ok {
		return
	}

	volume := a.data.SFXVolume * cue.Volume
	if mult, ok := a.sound.VolumeMultipliers[cue.ID]; ok {
		volume *= mult
	}

	if cue.Loop {
		if p, ok := a.loops[cue.ID]; ok && p.IsPlaying() {
			return
		}
	}

	var (
		player *audio.Player
		err    error
	)
	if cue.Loop {
		player, err = a.loader.LoadSFXLoop(path)
	} else {
		player, err = a.loader.LoadSFX(path)
	}
	if err != nil {
		a.warnOnce(path, err)
		return
	}
	player.SetVolume(volume)
	player.Play()
	if cue.Loop {
		a.loops[cue.ID] = player
	}
}

// StopLoop stops a looping cue started with Play(id, true, ...).
func (a *EbitenAudio) StopLoop(id cfg.SoundID) {
	if p, ok := a.loops[id]; ok {
		_ = p.Close()
		delete(a.loops, id)
	}
}

// PlayMusic starts the looping stage track.
func (a *EbitenAudio) PlayMusic(path string) {
	if a.music != nil {
		_ = a.music.Close()
		a.music = nil
	}
	player, err := a.loader.LoadMusic(path)
	if err != nil {
		a.warnOnce(path, err)
		return
	}
	a.music = player
	a.applyMusicVolume()
	if !a.paused {
		player.Play()
	}
}

// SetPaused pauses or resumes music and looping cues.
func (a *EbitenAudio) SetPaused(paused bool) {
	if a.paused == paused {
		return
	}
	a.paused = paused
	players := make([]*audio.Player, 0, len(a.loops)+1)
	if a.music != nil {
		players = append(players, a.music)
	}
	for _, p := range a.loops {
		players = append(players, p)
	}
	for _, p := range players {
		if paused {
			p.Pause()
		} else {
			p.Play()
		}
	}
}

// ApplySettings copies user settings into the audio state.
func (a *EbitenAudio) ApplySettings(s components.SettingsData) {
	a.data.MusicVolume = s.MusicVolume
	a.data.SFXVolume = s.SFXVolume
	a.data.Muted = s.Muted
	a.applyMusicVolume()
}

func (a *EbitenAudio) applyMusicVolume() {
	if a.music == nil {
		return
	}
	if a.data.Muted {
		a.music.SetVolume(0)
		return
	}
	a.music.SetVolume(a.data.MusicVolume)
}

// Close releases every player.
func (a *EbitenAudio) Close() {
	if a.music != nil {
		_ = a.music.Close()
		a.music = nil
	}
	for id := range a.loops {
		a.StopLoop(id)
	}
}

func (a *EbitenAudio) warnOnce(path string, err error) {
	if a.warned[path] {
		return
	}
	a.warned[path] = true
	a.log.Warn("sound unavailable", zap.String("path", path), zap.Error(err))
}

// GetOrCreateAudio returns the singleton Audio component, creating it if needed
func GetOrCreateAudio(e *ecs.ECS, defaults cfg.AudioConfig) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: defaults.DefaultMusicVol,
			SFXVolume:   defaults.DefaultSFXVol,
			PendingSFX:  make([]components.SoundCue, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

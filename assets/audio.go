package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader reads sound files from an asset filesystem. Sound effects are
// cached as decoded PCM so repeated cues start instantly.
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a loader that decodes for ctx's sample rate.
func NewAudioLoader(fsys fs.FS, ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes p into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}
	decoded, err := l.decode(p)
	if err != nil {
		return err
	}
	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a fresh player for a cached sound effect.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

// LoadSFXLoop returns a player that repeats a cached sound effect.
func (l *AudioLoader) LoadSFXLoop(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	pcm := l.sfxCache[p]
	return l.context.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
}

// LoadMusic returns a looping player for an ogg track.
func (l *AudioLoader) LoadMusic(p string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read music %s: %w", p, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music %s: %w", p, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decode(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format %q: %s", ext, p)
	}
	if err != nil {
		return nil, fmt.Errorf("decode audio %s: %w", p, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Library loads animation frames from an asset filesystem and caches both
// the decoded sheets and the sliced frames. Missing or undecodable images
// are logged once and reported as nil so callers can skip drawing.
type Library struct {
	fsys   fs.FS
	defs   map[config.AnimationID]config.AnimationDef
	log    *zap.Logger
	cache  map[string]*ebiten.Image
	frames map[frameKey]*ebiten.Image
	failed map[string]bool
}

type frameKey struct {
	id    config.AnimationID
	frame int
}

// NewLibrary creates a library over fsys. A nil logger discards output.
func NewLibrary(fsys fs.FS, defs map[config.AnimationID]config.AnimationDef, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		fsys:   fsys,
		defs:   defs,
		log:    log,
		cache:  make(map[string]*ebiten.Image),
		frames: make(map[frameKey]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// FramePath returns the file holding frame of def.
func FramePath(def config.AnimationDef, frame int) string {
	if def.IsMultiFile {
		return fmt.Sprintf(def.PathPattern, frame)
	}
	return def.PathPattern
}

// FrameRect returns the source rectangle of frame inside its file. Sheets
// lay frames out horizontally; multi-file frames use the whole image.
func FrameRect(def config.AnimationDef, frame int) image.Rectangle {
	if def.IsMultiFile {
		return image.Rect(0, 0, def.FrameWidth, def.FrameHeight)
	}
	sx := frame * def.FrameWidth
	return image.Rect(sx, 0, sx+def.FrameWidth, def.FrameHeight)
}

// Frame returns the image for frame of id, or nil when unavailable.
func (l *Library) Frame(id config.AnimationID, frame int) *ebiten.Image {
	key := frameKey{id: id, frame: frame}
	if img, ok := l.frames[key]; ok {
		return img
	}

	def, ok := l.defs[id]
	if !ok || frame < 0 || frame >= def.FrameCount {
		return nil
	}

	img := l.image(FramePath(def, frame))
	if img != nil {
		rect := FrameRect(def, frame)
		if !rect.In(img.Bounds()) {
			l.log.Warn("frame outside image", zap.String("animation", string(id)), zap.Int("frame", frame))
			img = nil
		} else if !def.IsMultiFile || !rect.Eq(img.Bounds()) {
			img = img.SubImage(rect).(*ebiten.Image)
		}
	}
	l.frames[key] = img
	return img
}

// Preload decodes every frame in the table so the first play does not stall.
func (l *Library) Preload() {
	for id, def := range l.defs {
		for f := 0; f < def.FrameCount; f++ {
			l.Frame(id, f)
		}
	}
}

// Failed reports whether path could not be loaded.
func (l *Library) Failed(path string) bool {
	return l.failed[path]
}

func (l *Library) image(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}
	if l.failed[path] {
		return nil
	}

	img, err := l.load(path)
	if err != nil {
		l.failed[path] = true
		l.log.Warn("image unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	l.cache[path] = img
	return img
}

func (l *Library) load(path string) (*ebiten.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem")
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/fonts"
	"github.com/automoto/dashblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines every collision object and prints lines in the top
// left corner. It draws nothing unless the overlay is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image, scroll math.Vec2, lines []string) {
	if !GetOrCreatePause(e).ShowDebug {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
		for _, obj := range space.Objects() {
			x := obj.X - scroll.X
			y := obj.Y - scroll.Y
			// Cull objects outside viewport
			if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
				continue
			}
			c := color.Color(cfg.Cyan)
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Blue
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	face, ok := fonts.Mono.Lookup()
	if !ok {
		return
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 18+i*16, cfg.Yellow)
	}
}

// PlayerDebugLines describes the player's simulation state.
func PlayerDebugLines(entry *donburi.Entry) []string {
	if entry == nil || !entry.Valid() {
		return nil
	}
	state := components.State.Get(entry)
	phys := components.Physics.Get(entry)
	dash := components.Dash.Get(entry)
	player := components.Player.Get(entry)
	x, y := components.Object.Get(entry).Feet()
	return []string{
		fmt.Sprintf("state %s (%.2fs) station %s", state.CurrentState, state.StateTimer, phys.Station),
		fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f ground %t", x, y, phys.VelocityX, phys.VelocityY, phys.OnGround),
		fmt.Sprintf("dash %s %.1f/%.1f dashing %t", dash.Phase, dash.Progress, dash.Distance, dash.IsDashing),
		fmt.Sprintf("jump locked %t super %t", player.JumpLocked, phys.IsSuperJumping),
	}
}

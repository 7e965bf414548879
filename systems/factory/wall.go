package factory

import (
	"github.com/automoto/dashblade/archetypes"
	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates the flat ground strip whose top edge is groundY.
func CreateGround(ecs *ecs.ECS, minX, maxX, groundY, depth float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	addSolid(ecs, ground, minX, groundY, maxX-minX, depth, tags.ResolvGround)
	return ground
}

// CreateWall creates a screen-bound wall.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addSolid(ecs, wall, x, y, w, h, tags.ResolvWall)
	return wall
}

func addSolid(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Feet returns the bottom-center anchor of the object.
func (o *ObjectData) Feet() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H
}

// SetFeet moves the object so its bottom-center sits at (x, y).
func (o *ObjectData) SetFeet(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H
}

var Object = donburi.NewComponentType[ObjectData]()

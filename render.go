package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doorsim/common"
	"github.com/milk9111/doorsim/ecs"
	"github.com/milk9111/doorsim/ecs/component"
)

const pixelsPerUnit = 80

var (
	closedColor = color.RGBA{R: 0x7c, G: 0x90, B: 0xff, A: 0xff}
	openColor   = color.RGBA{R: 0x58, G: 0xd6, B: 0x8d, A: 0xff}
	frameColor  = color.RGBA{R: 0x3a, G: 0x3a, B: 0x42, A: 0xff}
)

func worldToScreen(v cp.Vector) (float32, float32) {
	return float32(baseWidth/2 + v.X*pixelsPerUnit),
		float32(baseHeight/2 - v.Y*pixelsPerUnit)
}

// drawDoors renders a top-down view: each leaf is a thick line segment
// that translates (sliding) or pivots about its hinge (swinging). The
// closed position is drawn underneath as a dark frame line.
func drawDoors(screen *ebiten.Image, w *ecs.World) {
	if w == nil {
		return
	}
	leaves := ecs.Query(w, component.LeafComponent)

	for _, e := range leaves {
		leaf, lok := ecs.Get(w, e, component.LeafComponent)
		tr, tok := ecs.Get(w, e, component.TransformComponent)
		if !lok || !tok {
			continue
		}
		start := tr.Base.Position
		end := start.Add(cp.ForAngle(tr.Base.Angle).Mult(leaf.Dims.Length))
		x1, y1 := worldToScreen(start)
		x2, y2 := worldToScreen(end)
		vector.StrokeLine(screen, x1, y1, x2, y2, 2, frameColor, true)
	}

	for _, e := range leaves {
		leaf, lok := ecs.Get(w, e, component.LeafComponent)
		tr, tok := ecs.Get(w, e, component.TransformComponent)
		if !lok || !tok {
			continue
		}
		drawLeaf(screen, leaf, tr)
	}
}

func drawLeaf(screen *ebiten.Image, leaf *component.Leaf, tr *component.Transform) {
	var start, end cp.Vector
	switch leaf.Kind {
	case component.MotionSwinging:
		dir := cp.ForAngle(tr.Base.Angle + tr.Angle)
		start = tr.Base.Position
		end = start.Add(dir.Mult(leaf.Dims.Length))
	default:
		dir := cp.ForAngle(tr.Base.Angle)
		start = tr.Base.Position.Add(dir.Mult(tr.Offset))
		end = start.Add(dir.Mult(leaf.Dims.Length))
	}

	x1, y1 := worldToScreen(start)
	x2, y2 := worldToScreen(end)
	width := float32(math.Max(leaf.Dims.Thickness*pixelsPerUnit, 3))
	vector.StrokeLine(screen, x1, y1, x2, y2, width, leafColor(leaf, tr), true)
}

// leafColor fades from the closed color to the open color by how far
// the leaf has travelled.
func leafColor(leaf *component.Leaf, tr *component.Transform) color.Color {
	swing := math.Abs(leaf.SwingValue)
	if swing == 0 {
		return closedColor
	}
	travelled := math.Abs(tr.Offset)
	if leaf.Kind == component.MotionSwinging {
		travelled = math.Abs(tr.Angle)
	}
	t := common.Clamp(travelled/swing, 0, 1)
	return color.RGBA{
		R: uint8(common.Lerp(float64(closedColor.R), float64(openColor.R), t)),
		G: uint8(common.Lerp(float64(closedColor.G), float64(openColor.G), t)),
		B: uint8(common.Lerp(float64(closedColor.B), float64(openColor.B), t)),
		A: 0xff,
	}
}

package signal

import (
	"math"
	"math/rand/v2"
)

// Point is one particle. Pos and Color are what gets drawn; Start* is the
// snapshot taken when a transition begins and Target* is written by the
// layout for the current state. While a transition runs,
// Pos = lerp(Start, Target, ease(progress)) for the point's own timeline.
type Point struct {
	Index int

	Pos    Vec2
	Start  Vec2
	Target Vec2

	Color       Color
	StartColor  Color
	TargetColor Color
}

// PointCount returns how many points a canvas of the given size gets.
// FixedPoints wins when set; otherwise the count follows the canvas area,
// clamped to [MinPoints, MaxPoints].
func PointCount(width, height int, cfg Config) int {
	if cfg.FixedPoints > 0 {
		return cfg.FixedPoints
	}
	per := cfg.AreaPerPoint
	if per <= 0 {
		per = 1
	}
	n := float64(width) * float64(height) / per
	if cfg.MaxPoints > 0 {
		n = Range{float64(cfg.MinPoints), float64(cfg.MaxPoints)}.Clamp(n)
	}
	return int(n)
}

// NewPoints creates count points scattered uniformly in angle and radius
// over a disk centered on the canvas, with radius seedRadius·width. Every
// point starts at rest (Start = Target = Pos) with ColorNeutral.
func NewPoints(count int, width, height, seedRadius float64, rng *rand.Rand) []Point {
	points := make([]Point, count)
	cx, cy := width/2, height/2
	angle := Range{0, 2 * math.Pi}
	dist := Range{0, width * seedRadius}
	for i := range points {
		a := angle.Random(rng)
		d := dist.Random(rng)
		pos := Vec2{cx + math.Cos(a)*d, cy + math.Sin(a)*d}
		points[i] = Point{
			Index:       i,
			Pos:         pos,
			Start:       pos,
			Target:      pos,
			Color:       ColorNeutral,
			StartColor:  ColorNeutral,
			TargetColor: ColorNeutral,
		}
	}
	return points
}

// snapshot freezes the current position and color as the transition start.
func (p *Point) snapshot() {
	p.Start = p.Pos
	p.StartColor = p.Color
}

// step moves the point to eased progress t between Start and Target.
func (p *Point) step(t float64) {
	p.Pos = lerpVec(p.Start, p.Target, t)
	p.Color = lerpColor(p.StartColor, p.TargetColor, t)
}

// settle puts the point exactly on its target.
func (p *Point) settle() {
	p.Pos = p.Target
	p.Color = p.TargetColor
}

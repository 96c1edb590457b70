package signal

import "math"

// Hexagon describes one cell of the hexagon layout. It is recomputed every
// time the layout runs and discarded afterwards.
type Hexagon struct {
	Center   Vec2
	Radius   float64
	Row, Col int
	// Boundary holds the rim samples in edge order: perEdge samples for
	// edge 0, then edge 1, and so on around the hexagon.
	Boundary []Vec2
}

const (
	hexBandWidth  = 0.8  // share of the canvas width the grid occupies
	hexBandHeight = 0.7  // share of the canvas height
	hexFill       = 0.45 // circumradius relative to the tighter grid spacing
	hexInterior   = 0.85 // outermost interior ring, relative to the radius
	hexAngleStep  = 0.53 // radians between consecutive interior points
)

// hexGridSize returns the grid shape for a canvas width.
func hexGridSize(width float64) (rows, cols int) {
	switch {
	case width >= 900:
		return 3, 5
	case width >= 600:
		return 3, 4
	default:
		return 2, 3
	}
}

// hexEdgePoints returns the rim samples per edge, one per 100px of width,
// clamped to [6, 10].
func hexEdgePoints(width float64) int {
	n := int(math.Round(width / 100))
	return int(Range{6, 10}.Clamp(float64(n)))
}

// hexVertexAngle is the angle of rim position f, measured in edges from the
// top vertex. Hexagons are pointy-top.
func hexVertexAngle(f float64) float64 {
	return -math.Pi/2 + f*math.Pi/3
}

// HexagonGrid tiles rows×cols hexagons in a band centered on the canvas.
// Odd rows shift right by a third of the column spacing for the honeycomb
// look. Each hexagon's rim is sampled with perEdge points per edge, all at
// exactly the circumradius: every edge starts on a corner and the samples
// between corners follow the circumscribed circle, so an edge bows outward
// by up to (1-√3/2)·Radius at its midpoint. With six to ten samples per
// edge the rim reads as a rounded hexagon.
func HexagonGrid(width, height float64, perEdge int) []Hexagon {
	rows, cols := hexGridSize(width)
	colStep := width * hexBandWidth / float64(cols)
	rowStep := height * hexBandHeight / float64(rows)
	left := width * (1 - hexBandWidth) / 2
	top := height * (1 - hexBandHeight) / 2
	radius := hexFill * math.Min(colStep, rowStep)

	hexes := make([]Hexagon, 0, rows*cols)
	for r := 0; r < rows; r++ {
		shift := -colStep / 6
		if r%2 == 1 {
			shift += colStep / 3
		}
		for c := 0; c < cols; c++ {
			h := Hexagon{
				Center: Vec2{
					X: left + (float64(c)+0.5)*colStep + shift,
					Y: top + (float64(r)+0.5)*rowStep,
				},
				Radius: radius,
				Row:    r,
				Col:    c,
			}
			h.Boundary = h.rim(perEdge)
			hexes = append(hexes, h)
		}
	}
	return hexes
}

// Corners returns the six vertices, clockwise from the top.
func (h Hexagon) Corners() [6]Vec2 {
	var cs [6]Vec2
	for e := range cs {
		cs[e] = h.onCircle(hexVertexAngle(float64(e)))
	}
	return cs
}

func (h Hexagon) onCircle(a float64) Vec2 {
	return Vec2{h.Center.X + h.Radius*math.Cos(a), h.Center.Y + h.Radius*math.Sin(a)}
}

// rim samples the boundary in edge order, each edge opening on its corner.
func (h Hexagon) rim(perEdge int) []Vec2 {
	corners := h.Corners()
	boundary := make([]Vec2, 0, 6*perEdge)
	for e := 0; e < 6; e++ {
		boundary = append(boundary, corners[e])
		for j := 1; j < perEdge; j++ {
			boundary = append(boundary, h.onCircle(hexVertexAngle(float64(e)+float64(j)/float64(perEdge))))
		}
	}
	return boundary
}

// interiorPoint places the m-th of count interior points. Radii shrink from
// hexInterior·Radius toward the center and stay strictly inside the
// hexagon's inscribed circle.
func (h Hexagon) interiorPoint(m, count int) Vec2 {
	a := float64(m) * hexAngleStep
	r := h.Radius * hexInterior * (1 - (float64(m)+0.5)/float64(count+1))
	return Vec2{h.Center.X + r*math.Cos(a), h.Center.Y + r*math.Sin(a)}
}

// layoutHexagon spreads points round-robin across the grid: point i goes to
// hexagon i mod H and is the (i / H)-th point of that hexagon. The first
// 6·perEdge points of each hexagon trace the rim, the rest fill the inside.
// Color mixes the cell's grid position (70%) with the edge index (30%).
func layoutHexagon(points []Point, env LayoutEnv, pal Palette) {
	perEdge := hexEdgePoints(env.Width)
	hexes := HexagonGrid(env.Width, env.Height, perEdge)
	count := len(hexes)
	if count == 0 {
		return
	}
	rim := 6 * perEdge
	perHex := (len(points) + count - 1) / count
	inside := max(perHex-rim, 0)

	for i := range points {
		p := &points[i]
		h := hexes[i%count]
		local := i / count

		var edge int
		if local < rim {
			p.Target = h.Boundary[local]
			edge = local / perEdge
		} else {
			m := local - rim
			p.Target = h.interiorPoint(m, inside)
			a := math.Mod(float64(m)*hexAngleStep+math.Pi/2, 2*math.Pi)
			edge = int(a/(math.Pi/3)) % 6
		}

		grid := 0.0
		if count > 1 {
			grid = float64(i%count) / float64(count-1)
		}
		p.TargetColor = pal.At(0.7*grid + 0.3*float64(edge)/5)
	}
}

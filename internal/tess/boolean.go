package tess

import (
	"math"
	"sort"

	"github.com/gogpu/media/internal/pathdata"
)

// region is a set of rings filled with a fill rule.
type region struct {
	rings [][]Point
	rule  pathdata.FillRule
}

func (r region) contains(pt Point) bool {
	w := winding(r.rings, pt)
	if r.rule == pathdata.EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

type opFunc func(a, b bool) bool

func opFor(mode CombineMode) opFunc {
	switch mode {
	case Intersect:
		return func(a, b bool) bool { return a && b }
	case Xor:
		return func(a, b bool) bool { return a != b }
	case Exclude:
		return func(a, b bool) bool { return a && !b }
	default:
		return func(a, b bool) bool { return a || b }
	}
}

// winding returns the winding number of the rings around pt.
func winding(rings [][]Point, pt Point) int {
	w := 0
	for _, ring := range rings {
		n := len(ring)
		for i := range ring {
			p0, p1 := ring[i], ring[(i+1)%n]
			if p0.Y <= pt.Y {
				if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
					w++
				}
			} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
				w--
			}
		}
	}
	return w
}

// isLeft is positive when pt lies left of the directed line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

type split struct {
	t float64
	p Point
}

type edge struct {
	p, q   Point
	splits []split
}

// clip returns closed loops bounding the points where op(a, b) holds.
// Loops keep the inside on their left, so the result fills correctly with
// either fill rule and its signed areas sum to the covered area.
//
// Edges of both regions are split at every intersection, each piece is
// classified by sampling both sides of its midpoint, and the boundary
// pieces are chained into loops.
func clip(a, b region, op opFunc) [][]Point {
	edges := collectEdges(a.rings, b.rings)
	if len(edges) == 0 {
		return nil
	}
	scale := magnitude(edges)
	if scale == 0 {
		return nil
	}
	eps := scale * 1e-9

	splitEdges(edges, eps)

	g := newGraph(eps)
	for i := range edges {
		e := &edges[i]
		sort.Slice(e.splits, func(i, j int) bool { return e.splits[i].t < e.splits[j].t })
		prev := e.p
		for _, s := range e.splits {
			g.addEdge(prev, s.p)
			prev = s.p
		}
		g.addEdge(prev, e.q)
	}

	offset := scale * 1e-7
	var boundary [][2]int
	for _, k := range g.order {
		u, v := g.verts[k[0]], g.verts[k[1]]
		dx, dy := v.X-u.X, v.Y-u.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		d := math.Min(offset, l/4)
		nx, ny := -dy/l*d, dx/l*d
		mx, my := (u.X+v.X)/2, (u.Y+v.Y)/2
		left := Point{X: mx + nx, Y: my + ny}
		right := Point{X: mx - nx, Y: my - ny}

		inL := op(a.contains(left), b.contains(left))
		inR := op(a.contains(right), b.contains(right))
		switch {
		case inL == inR:
		case inL:
			boundary = append(boundary, [2]int{k[0], k[1]})
		default:
			boundary = append(boundary, [2]int{k[1], k[0]})
		}
	}
	return chain(g.verts, boundary)
}

func collectEdges(sets ...[][]Point) []edge {
	var edges []edge
	for _, rings := range sets {
		for _, ring := range rings {
			n := len(ring)
			for i := range ring {
				p, q := ring[i], ring[(i+1)%n]
				if p != q {
					edges = append(edges, edge{p: p, q: q})
				}
			}
		}
	}
	return edges
}

// magnitude returns the largest coordinate magnitude or extent of the edges.
func magnitude(edges []edge) float64 {
	var m float64
	for _, e := range edges {
		m = math.Max(m, math.Max(math.Max(math.Abs(e.p.X), math.Abs(e.p.Y)), math.Max(math.Abs(e.q.X), math.Abs(e.q.Y))))
	}
	return m
}

// splitEdges intersects every pair of edges whose x extents overlap. Edges
// are swept in order of their left end, so pairs that are apart in x are
// never visited.
func splitEdges(edges []edge, eps float64) {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return edges[order[a]].minX() < edges[order[b]].minX() })

	for a, i := range order {
		right := edges[i].maxX() + eps
		for _, j := range order[a+1:] {
			if edges[j].minX() > right {
				break
			}
			// intersect snaps toward its first edge; keep index order.
			if i < j {
				intersect(&edges[i], &edges[j], eps)
			} else {
				intersect(&edges[j], &edges[i], eps)
			}
		}
	}
}

func (e *edge) minX() float64 { return math.Min(e.p.X, e.q.X) }
func (e *edge) maxX() float64 { return math.Max(e.p.X, e.q.X) }

// intersect records the points where e1 and e2 touch or cross on both
// edges. Collinear overlaps split each edge at the other's endpoints.
func intersect(e1, e2 *edge, eps float64) {
	if math.Max(e1.p.X, e1.q.X)+eps < math.Min(e2.p.X, e2.q.X) ||
		math.Max(e2.p.X, e2.q.X)+eps < math.Min(e1.p.X, e1.q.X) ||
		math.Max(e1.p.Y, e1.q.Y)+eps < math.Min(e2.p.Y, e2.q.Y) ||
		math.Max(e2.p.Y, e2.q.Y)+eps < math.Min(e1.p.Y, e1.q.Y) {
		return
	}

	rx, ry := e1.q.X-e1.p.X, e1.q.Y-e1.p.Y
	sx, sy := e2.q.X-e2.p.X, e2.q.Y-e2.p.Y
	qx, qy := e2.p.X-e1.p.X, e2.p.Y-e1.p.Y
	rLen := math.Hypot(rx, ry)
	sLen := math.Hypot(sx, sy)
	denom := rx*sy - ry*sx

	if math.Abs(denom) > 1e-12*rLen*sLen {
		t := (qx*sy - qy*sx) / denom
		u := (qx*ry - qy*rx) / denom
		tEps, uEps := eps/rLen, eps/sLen
		if t < -tEps || t > 1+tEps || u < -uEps || u > 1+uEps {
			return
		}
		p := Point{X: e1.p.X + rx*t, Y: e1.p.Y + ry*t}
		switch {
		case u <= uEps:
			p = e2.p
		case u >= 1-uEps:
			p = e2.q
		}
		switch {
		case t <= tEps:
			p = e1.p
		case t >= 1-tEps:
			p = e1.q
		}
		if t > tEps && t < 1-tEps {
			e1.splits = append(e1.splits, split{t: t, p: p})
		}
		if u > uEps && u < 1-uEps {
			e2.splits = append(e2.splits, split{t: u, p: p})
		}
		return
	}

	// Parallel: only collinear edges touch.
	if math.Abs(qx*ry-qy*rx)/rLen > eps {
		return
	}
	onto := func(e *edge, dx, dy, l float64, pts ...Point) {
		for _, p := range pts {
			t := ((p.X-e.p.X)*dx + (p.Y-e.p.Y)*dy) / (l * l)
			if t > eps/l && t < 1-eps/l {
				e.splits = append(e.splits, split{t: t, p: p})
			}
		}
	}
	onto(e1, rx, ry, rLen, e2.p, e2.q)
	onto(e2, sx, sy, sLen, e1.p, e1.q)
}

// graph deduplicates vertices on a grid and undirected edges by endpoints.
type graph struct {
	grid  float64
	index map[[2]int64]int
	verts []Point
	seen  map[[2]int]bool
	order [][2]int
}

func newGraph(grid float64) *graph {
	return &graph{
		grid:  grid,
		index: make(map[[2]int64]int),
		seen:  make(map[[2]int]bool),
	}
}

func (g *graph) vertex(p Point) int {
	key := [2]int64{int64(math.Round(p.X / g.grid)), int64(math.Round(p.Y / g.grid))}
	if i, ok := g.index[key]; ok {
		return i
	}
	g.index[key] = len(g.verts)
	g.verts = append(g.verts, p)
	return len(g.verts) - 1
}

func (g *graph) addEdge(p, q Point) {
	u, v := g.vertex(p), g.vertex(q)
	if u == v {
		return
	}
	k := [2]int{min(u, v), max(u, v)}
	if g.seen[k] {
		return
	}
	g.seen[k] = true
	g.order = append(g.order, [2]int{u, v})
}

// chain links directed boundary edges into closed loops. At vertices with
// several outgoing edges the walk takes the sharpest left turn, which
// keeps loops that only touch at a vertex apart.
func chain(verts []Point, edges [][2]int) [][]Point {
	out := make(map[int][]int)
	for i, e := range edges {
		out[e[0]] = append(out[e[0]], i)
	}
	used := make([]bool, len(edges))

	var loops [][]Point
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		start := edges[i][0]
		loop := []Point{verts[start]}
		prev, cur := start, edges[i][1]
		for cur != start {
			loop = append(loop, verts[cur])
			next := -1
			best := math.Inf(-1)
			in := Point{X: verts[cur].X - verts[prev].X, Y: verts[cur].Y - verts[prev].Y}
			for _, j := range out[cur] {
				if used[j] {
					continue
				}
				w := verts[edges[j][1]]
				o := Point{X: w.X - verts[cur].X, Y: w.Y - verts[cur].Y}
				turn := math.Atan2(in.X*o.Y-in.Y*o.X, in.X*o.X+in.Y*o.Y)
				if turn > best {
					best, next = turn, j
				}
			}
			if next < 0 {
				break
			}
			used[next] = true
			prev, cur = cur, edges[next][1]
		}
		if loop = simplify(loop); len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// simplify drops vertices that continue straight on.
func simplify(loop []Point) []Point {
	for changed := true; changed && len(loop) >= 3; {
		changed = false
		out := loop[:0:0]
		n := len(loop)
		for i := range loop {
			p, c, q := loop[(i+n-1)%n], loop[i], loop[(i+1)%n]
			ax, ay := c.X-p.X, c.Y-p.Y
			bx, by := q.X-c.X, q.Y-c.Y
			cross := ax*by - ay*bx
			if math.Abs(cross) <= 1e-12*math.Hypot(ax, ay)*math.Hypot(bx, by) && ax*bx+ay*by > 0 {
				changed = true
				// restart after each removal
				out = append(out, loop[i+1:]...)
				break
			}
			out = append(out, c)
		}
		loop = out
	}
	return loop
}

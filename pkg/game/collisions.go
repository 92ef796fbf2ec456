package game

import (
	"math"
	"slices"

	"github.com/cbodonnell/kangaroo/pkg/game/constants"
	"github.com/cbodonnell/kangaroo/pkg/game/types"
	"github.com/cbodonnell/kangaroo/pkg/kinematic"
	"github.com/cbodonnell/kangaroo/pkg/log"
	"github.com/solarlune/resolv"
)

// broadphaseMargin inflates the player's proxy object so that cell lookups
// never miss an obstacle the exact box overlaps.
const broadphaseMargin = 1.0

// supportTolerance is how far a bottom edge may sit above a surface and still rest on it.
const supportTolerance = 1e-6

// Resolution describes how an obstacle overlap was corrected.
type Resolution uint8

const (
	ResolutionNone Resolution = iota
	// ResolutionTop placed the player on top of the obstacle.
	ResolutionTop
	// ResolutionBottom placed the player below the obstacle.
	ResolutionBottom
	// ResolutionLeft placed the player against the obstacle's left side.
	ResolutionLeft
	// ResolutionRight placed the player against the obstacle's right side.
	ResolutionRight
	// ResolutionSeparate pushed the player out along the axis of least penetration
	// because neither single-axis reconstruction was clear of the obstacle.
	ResolutionSeparate
)

func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionTop:
		return "top"
	case ResolutionBottom:
		return "bottom"
	case ResolutionLeft:
		return "left"
	case ResolutionRight:
		return "right"
	case ResolutionSeparate:
		return "separate"
	}
	return "unknown"
}

// NewCollisionSpace creates an empty broad phase space of the given size.
func NewCollisionSpace(width, height float64) *resolv.Space {
	cell := constants.BroadphaseCellSize
	// one extra cell on each axis so that objects touching the far edges are kept
	return resolv.NewSpace(int(math.Ceil(width))+cell, int(math.Ceil(height))+cell, cell, cell)
}

// broadphase maps world rectangles into a resolv space. The space only has cells at
// non-negative coordinates, so world rectangles are shifted by origin to make room for
// the player's proxy at the left edge and for everything that can sit or fly above
// the top of the canvas.
type broadphase struct {
	space  *resolv.Space
	origin kinematic.Vector
	width  float64
	height float64
}

func newBroadphase(width, height, originY float64) *broadphase {
	origin := kinematic.Vector{X: math.Ceil(broadphaseMargin), Y: originY}
	w, h := width+2*origin.X, height+origin.Y
	return &broadphase{
		space:  NewCollisionSpace(w, h),
		origin: origin,
		width:  w,
		height: h,
	}
}

// spaceOriginY returns how far the broad phase must reach above y=0 for the player
// standing on or jumping from any obstacle, the start position or the collectible.
func spaceOriginY(opts WorldOptions, obstacles []types.Obstacle, collectible types.Collectible) float64 {
	top := math.Min(opts.PlayerStart.Y, collectible.Y)
	for _, obstacle := range obstacles {
		top = math.Min(top, obstacle.Y-opts.PlayerHeight)
	}
	if opts.Tuning.Gravity > 0 {
		jump := opts.Tuning.JumpPower
		// the sub-stepped apex overshoots jump^2/2g by less than one jump of travel
		top -= jump*jump/(2*opts.Tuning.Gravity) + jump
	}
	top -= broadphaseMargin
	if top >= 0 {
		return 0
	}
	return math.Ceil(-top)
}

func (b *broadphase) toSpace(rect types.Rect) types.Rect {
	rect.X += b.origin.X
	rect.Y += b.origin.Y
	return rect
}

// covers reports whether rect lies inside the cells of the space.
func (b *broadphase) covers(rect types.Rect) bool {
	r := b.toSpace(rect)
	return r.X >= 0 && r.Y >= 0 && r.Right() <= b.width && r.Bottom() <= b.height
}

func (b *broadphase) newObstacleObject(index int, obstacle types.Obstacle) *resolv.Object {
	obj := b.newRectObject(obstacle.Rect, types.CollisionSpaceTagObstacle)
	obj.Data = index
	return obj
}

func (b *broadphase) newRectObject(rect types.Rect, tags ...string) *resolv.Object {
	r := b.toSpace(rect)
	return resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
}

// sync moves obj to rect and refreshes its cells.
func (b *broadphase) sync(obj *resolv.Object, rect types.Rect) {
	r := b.toSpace(rect)
	obj.Position.X = r.X
	obj.Position.Y = r.Y
	obj.Size.X = r.W
	obj.Size.Y = r.H
	obj.Update()
}

// ResolveObstacle separates the player from a single obstacle using the player's
// previous sub-step position. The vertical-only reconstruction is tried first, then
// the horizontal-only one, then a minimum translation push. groundTop bounds
// downward pushes.
func ResolveObstacle(player *types.Player, obstacle types.Obstacle, groundTop float64) Resolution {
	box := player.Box()
	if !box.Intersects(obstacle.Rect) {
		return ResolutionNone
	}

	prevVertical := box
	prevVertical.Y = player.Prev.Y
	prevHorizontal := box
	prevHorizontal.X = player.Prev.X

	if !prevVertical.Intersects(obstacle.Rect) {
		if player.Prev.Y+player.Height <= obstacle.Y {
			player.Land(obstacle.Y)
			return ResolutionTop
		}
		player.Position.Y = obstacle.Bottom()
		player.VY = 0
		return ResolutionBottom
	}

	if !prevHorizontal.Intersects(obstacle.Rect) {
		if player.Prev.X+player.Width <= obstacle.X {
			player.Position.X = types.AlignBefore(obstacle.X, player.Width)
			return ResolutionLeft
		}
		player.Position.X = obstacle.Right()
		return ResolutionRight
	}

	separate(player, obstacle, groundTop)
	return ResolutionSeparate
}

// separate pushes the player out of obstacle along the shortest of the four directions.
func separate(player *types.Player, obstacle types.Obstacle, groundTop float64) {
	box := player.Box()
	up := box.Bottom() - obstacle.Y
	down := obstacle.Bottom() - box.Y
	left := box.Right() - obstacle.X
	right := obstacle.Right() - box.X

	best := up
	if left < best {
		best = left
	}
	if right < best {
		best = right
	}
	downAllowed := obstacle.Bottom()+player.Height <= groundTop
	if downAllowed && down < best {
		best = down
	}

	switch best {
	case up:
		player.Position.Y = types.AlignBefore(obstacle.Y, player.Height)
		player.Grounded = true
		if player.VY > 0 {
			player.VY = 0
		}
	case left:
		player.Position.X = types.AlignBefore(obstacle.X, player.Width)
	case right:
		player.Position.X = obstacle.Right()
	default:
		player.Position.Y = obstacle.Bottom()
		if player.VY < 0 {
			player.VY = 0
		}
	}
}

// obstacleCandidates returns the indices of obstacles sharing broad phase cells with
// the player's proxy, in ascending order. A proxy outside the space gets every obstacle.
func (w *World) obstacleCandidates() []int {
	proxy := w.Player.Box().Inflate(broadphaseMargin)
	if !w.broadphase.covers(proxy) {
		indices := make([]int, len(w.Obstacles))
		for i := range indices {
			indices[i] = i
		}
		return indices
	}
	w.broadphase.sync(w.playerObject, proxy)

	collision := w.playerObject.Check(0, 0, types.CollisionSpaceTagObstacle)
	if collision == nil {
		return nil
	}
	indices := make([]int, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		index, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if !slices.Contains(indices, index) {
			indices = append(indices, index)
		}
	}
	slices.Sort(indices)
	return indices
}

// overlappingObstacle returns the lowest index obstacle the player's box strictly overlaps.
func (w *World) overlappingObstacle() (int, bool) {
	box := w.Player.Box()
	for _, index := range w.obstacleCandidates() {
		if box.Intersects(w.Obstacles[index].Rect) {
			return index, true
		}
	}
	return 0, false
}

// resolveObstacles corrects overlaps one obstacle at a time, lowest index first.
// A correction can push the player into an obstacle that was already clear, so the
// candidates are looked up again after each one. When the corrections run out the
// player cannot fit where it is and is lifted onto the highest obstacle beneath it.
func (w *World) resolveObstacles() {
	for i := range w.resolutions {
		w.resolutions[i] = ResolutionNone
	}

	maxCorrections := 2*len(w.Obstacles) + 1
	for corrections := 0; ; corrections++ {
		index, ok := w.overlappingObstacle()
		if !ok {
			return
		}
		if corrections == maxCorrections {
			w.liftOntoObstacles()
			return
		}
		resolution := ResolveObstacle(w.Player, w.Obstacles[index], w.Ground.Top())
		w.resolutions[index] = resolution
		log.Trace("Resolved obstacle %d: %s", index, resolution)
	}
}

// liftOntoObstacles lands the player on the highest top among the obstacles its
// box shares horizontal extent with.
func (w *World) liftOntoObstacles() {
	box := w.Player.Box()
	highest := -1
	for i, obstacle := range w.Obstacles {
		if !box.OverlapsHorizontally(obstacle.Rect) {
			continue
		}
		if highest < 0 || obstacle.Y < w.Obstacles[highest].Y {
			highest = i
		}
	}
	if highest < 0 {
		return
	}
	log.Debug("Player does not fit between obstacles, lifting onto obstacle %d", highest)
	w.Player.Land(w.Obstacles[highest].Y)
	w.resolutions[highest] = ResolutionTop
}

// supported reports whether the player's bottom edge rests on the ground or on an obstacle top.
func (w *World) supported() bool {
	box := w.Player.Box()
	if math.Abs(box.Bottom()-w.Ground.Top()) <= supportTolerance {
		return true
	}
	for _, obstacle := range w.Obstacles {
		if !box.OverlapsHorizontally(obstacle.Rect) {
			continue
		}
		if gap := obstacle.Y - box.Bottom(); gap >= 0 && gap <= supportTolerance {
			return true
		}
	}
	return false
}

// touchesCollectible reports a strict overlap between the player and the collectible.
func (w *World) touchesCollectible() bool {
	if w.Collectible.Collected {
		return false
	}
	proxy := w.Player.Box().Inflate(broadphaseMargin)
	if !w.broadphase.covers(proxy) {
		return w.Player.Box().Intersects(w.Collectible.Rect)
	}
	w.broadphase.sync(w.playerObject, proxy)
	if collision := w.playerObject.Check(0, 0, types.CollisionSpaceTagCollectible); collision == nil {
		return false
	}
	return w.Player.Box().Intersects(w.Collectible.Rect)
}

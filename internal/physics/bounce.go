package physics

import "github.com/puffgame/puff/internal/core"

// RigidBounce returns the new velocity for a body that collides with a
// surface whose contact normal is the given overlap vector. Axis-aligned
// normals flip the matching velocity component; any other normal reflects
// the velocity across the collision plane, preserving its magnitude. A
// zero normal leaves the velocity untouched.
func RigidBounce(vel, normal core.Vec2) core.Vec2 {
	switch {
	case normal.X == 0 && normal.Y == 0:
		return vel
	case normal.X == 0:
		return core.V(vel.X, -vel.Y)
	case normal.Y == 0:
		return core.V(-vel.X, vel.Y)
	default:
		// v' = -(n * 2(v.n)/|n|^2 - v)
		n := normal
		s := 2 * vel.Dot(n) / n.LenSq()
		return vel.Sub(n.Scale(s))
	}
}

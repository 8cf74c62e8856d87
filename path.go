package precise

import (
	"github.com/solarlune/precise/math64"
)

// A Path is a sequence of points in space. If Closed is true, the Path returns from its last point back to its first.
type Path struct {
	Points []Vector3
	Closed bool // Closed indicates if a Path is closed (and so going to the end will return to the start) or not.
}

// NewPath returns a new, open Path running through the given points.
func NewPath(points ...Vector3) *Path {
	return &Path{
		Points: append([]Vector3{}, points...),
	}
}

// Length returns the total distance that the Path covers by stepping through all of its points.
func (path *Path) Length() float64 {

	dist := 0.0

	if len(path.Points) <= 1 {
		return 0
	}

	for i := 1; i < len(path.Points); i++ {
		dist += path.Points[i].Distance(path.Points[i-1])
	}

	if path.Closed {
		dist += path.Points[len(path.Points)-1].Distance(path.Points[0])
	}

	return dist
}

// HopCount returns the number of hops in the path (i.e. number of points - 1).
func (path *Path) HopCount() int {
	return len(path.Points) - 1
}

// route returns the points in travel order, with the first point repeated at the end for closed Paths.
func (path *Path) route() []Vector3 {
	points := append(make([]Vector3, 0, len(path.Points)+1), path.Points...)
	if path.Closed && len(points) > 1 {
		points = append(points, path.Points[0])
	}
	return points
}

// locate returns the segment (starting at points[index]) that lies the given percentage of the way along the Path, and how
// far along that segment the percentage is. The percentage is weighted for distance, not for number of points.
func (path *Path) locate(perc float64) (points []Vector3, index int, t float64) {

	points = path.route()

	perc = math64.Clamp(perc, 0, 1)

	totalDistance := path.Length()

	if totalDistance == 0 {
		return points, 0, 0
	}

	d := perc

	for i := 0; i < len(points)-1; i++ {
		segmentDistance := points[i+1].Distance(points[i]) / totalDistance
		if d > segmentDistance {
			d -= segmentDistance
		} else if segmentDistance > 0 {
			return points, i, d / segmentDistance
		}
	}

	return points, len(points) - 2, 1

}

// ProgressToPosition returns a position on the Path, if given a percentage value that ranges from 0 to 1.
// The percentage is weighted for distance, not for number of points.
// For example, say you had a path comprised of four points: {0, 0, 0}, {9, 0, 0}, {9.5, 0, 0}, and {10, 0, 0}. If you called
// Path.ProgressToPosition(0.9), you'd get {9, 0, 0} (90% of the way through the path).
// If the Path has no points, this function returns an empty Vector3.
func (path *Path) ProgressToPosition(perc float64) Vector3 {

	if len(path.Points) == 0 {
		return Vector3{}
	}

	if len(path.Points) == 1 || path.Length() == 0 {
		return path.Points[0]
	}

	points, i, t := path.locate(perc)

	return points[i].LerpUnclamped(points[i+1], t)

}

// ProgressToRotation returns the rotation that faces along the Path at the given percentage (see ProgressToPosition), with its
// up direction kept as close to up as possible. A Path with no length returns the identity Quaternion.
func (path *Path) ProgressToRotation(perc float64, up Vector3) Quaternion {

	if path.Length() == 0 {
		return NewQuaternionIdentity()
	}

	points, i, _ := path.locate(perc)

	return NewQuaternionLookRotation(points[i+1].Sub(points[i]), up)

}

// ClosestProgress returns the percentage along the Path (see ProgressToPosition) of the point on the Path closest to the
// position given.
func (path *Path) ClosestProgress(position Vector3) float64 {

	totalDistance := path.Length()

	if totalDistance == 0 {
		return 0
	}

	points := path.route()

	closest := 0.0
	closestDistance := math64.Infinity
	travelled := 0.0

	for i := 0; i < len(points)-1; i++ {

		point := ClosestPointOnLine(points[i], points[i+1], position)

		if dist := point.DistanceSquared(position); dist < closestDistance {
			closestDistance = dist
			closest = (travelled + point.Distance(points[i])) / totalDistance
		}

		travelled += points[i+1].Distance(points[i])

	}

	return closest

}

// ClosestPointOnLine returns the closest point along a line spanning from start to end.
func ClosestPointOnLine(start, end, point Vector3) Vector3 {

	ab := end.Sub(start)

	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return start
	}

	t := point.Sub(start).Dot(ab) / lengthSquared
	return start.Add(ab.Scale(math64.Clamp(t, 0, 1)))

}

// PathStepper is an object that steps through points in a set path.
// It returns the position of the current point and has the ability to go to the next or previous point in the path.
type PathStepper struct {
	path  *Path
	Index int
}

// NewPathStepper returns a new PathStepper object.
func NewPathStepper(path *Path) *PathStepper {
	ps := &PathStepper{}
	ps.SetPath(path)
	return ps
}

// SetPath sets the path of the PathStepper.
// Doing this will reset the PathStepper's index to 0.
func (ps *PathStepper) SetPath(path *Path) {
	ps.path = path
	ps.SetIndexToStart()
}

// Path returns the path used by the PathStepper.
func (ps *PathStepper) Path() *Path {
	return ps.path
}

// SetIndexToStart resets the PathStepper to point to the beginning of the path.
func (ps *PathStepper) SetIndexToStart() {
	ps.Index = 0
}

// SetIndexToEnd sets the PathStepper to the point at the end of the path.
func (ps *PathStepper) SetIndexToEnd() {
	ps.Index = len(ps.path.Points) - 1
}

// CurrentPosition returns the position of the current point for the PathStepper.
// If the PathStepper has a nil Path or its Path has no points, this function returns an empty Vector3.
func (ps *PathStepper) CurrentPosition() Vector3 {
	if ps.path == nil || ps.Index < 0 || ps.Index >= len(ps.path.Points) {
		return Vector3{}
	}
	return ps.path.Points[ps.Index]
}

// Next steps to the next point in the Path for the PathStepper.
// If the PathStepper is at the end of the path, then it will loop through the path again.
func (ps *PathStepper) Next() {

	ps.Index++

	if ps.Index > len(ps.path.Points)-1 {
		ps.Index = 0
	}

}

// Prev steps to the previous point in the Path for the PathStepper.
// If the PathStepper is at the beginning of the path, then it will loop through the path again.
func (ps *PathStepper) Prev() {

	ps.Index--

	if ps.Index < 0 {
		ps.Index = len(ps.path.Points) - 1
	}

}

// AtEnd returns if the PathStepper is at the end of its path.
func (ps *PathStepper) AtEnd() bool {
	return ps.Index == len(ps.path.Points)-1
}

// AtStart returns if the PathStepper is at the start of its path.
func (ps *PathStepper) AtStart() bool {
	return ps.Index == 0
}

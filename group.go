package tween

// Group drives several independent tweens with a shared time delta and
// latches a Done flag once every member has finished. It is a driver-side
// convenience for the common "kick off a handful of animations and poll
// one flag" pattern; unlike [Parallel] it is not itself a tween node and
// feeds each member the full delta.
type Group struct {
	tweens []Tween
	Done   bool
}

// NewGroup collects the given tweens into a group.
func NewGroup(tweens ...Tween) *Group {
	return &Group{tweens: tweens}
}

// Update advances all members by dt. Once Done has latched, further calls
// are no-ops.
func (g *Group) Update(dt float64) {
	if g.Done {
		return
	}
	allDone := true
	for _, tw := range g.tweens {
		tw.Update(dt)
		if !tw.Done() {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset unlatches Done and resets every member.
func (g *Group) Reset() {
	g.Done = false
	for _, tw := range g.tweens {
		tw.Reset()
	}
}

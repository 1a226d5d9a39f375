package ir

// Fragment is relocatable data produced by a relative section: a value
// plus the unrooted path its author wrote. Fragments are held outside
// the document root; attaching one somewhere is the host application's
// decision, not the engine's.
type Fragment struct {
	Path  Path
	Value *Node
}

func (f Fragment) Clone() Fragment {
	return Fragment{Path: f.Path, Value: f.Value.Clone()}
}

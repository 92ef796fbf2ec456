package input

// Bindings holds the key sets for movement and jumping.
type Bindings struct {
	Left  []Key
	Right []Key
	Jump  []Key
}

// Intent is what the player asked for during a tick.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

func DefaultBindings() Bindings {
	return Bindings{
		Left:  []Key{KeyArrowLeft, "a"},
		Right: []Key{KeyArrowRight, "d"},
		Jump:  []Key{KeySpace, KeyArrowUp, "w"},
	}
}

// Resolve folds a snapshot into an intent. Keys outside the bindings are ignored.
func (b Bindings) Resolve(snapshot Snapshot) Intent {
	return Intent{
		Left:  snapshot.Held(b.Left...),
		Right: snapshot.Held(b.Right...),
		Jump:  snapshot.Held(b.Jump...),
	}
}


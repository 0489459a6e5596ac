package chat

// Key is the part of a keystroke the widget reacts to
type Key struct {
	Enter bool
	Shift bool
}

// SubmitsOn reports whether k triggers a submit in the given loading state
func SubmitsOn(k Key, loading bool) bool {
	return k.Enter && !k.Shift && !loading
}

// OnKey submits when Enter is pressed without Shift while idle.
// Every other keystroke leaves the state unchanged.
func (s State) OnKey(k Key) (State, string, bool) {
	if !SubmitsOn(k, s.loading) {
		return s, "", false
	}
	return s.Submit()
}

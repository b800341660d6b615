// Package state holds the runtime state shared between the field and its host.
// Both holders are passed by pointer; nothing here is a package global.
package state

// Stage tracks whether the particle field has been seeded from the current text.
type Stage struct {
	populated bool
}

// IsPopulated reports whether particles have been seeded.
func (s *Stage) IsPopulated() bool {
	return s.populated
}

// SetPopulated sets the populated flag. false forces a reseed on the next frame.
func (s *Stage) SetPopulated(populated bool) {
	s.populated = populated
}

// Options holds the user-toggleable rendering options.
type Options struct {
	Bold        bool
	Italic      bool
	RandomColor bool
}

// DefaultOptions returns bold text with randomized particle colors.
func DefaultOptions() Options {
	return Options{Bold: true, Italic: false, RandomColor: true}
}

// FontStyle returns a short label for the active style ("bold italic", "regular", ...).
func (o Options) FontStyle() string {
	switch {
	case o.Bold && o.Italic:
		return "bold italic"
	case o.Bold:
		return "bold"
	case o.Italic:
		return "italic"
	default:
		return "regular"
	}
}

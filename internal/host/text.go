package host

// Text is the host's styled text component. Raw keeps the original markup,
// Plain is the tag-stripped form shown in non-styled surfaces.
type Text struct {
	Raw    string
	Plain  string
	Italic bool
}

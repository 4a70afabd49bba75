package assets

// StyleLoader defines the contract for loading stylesheets by name.
type StyleLoader interface {
	// LoadStyle loads a stylesheet by name (without the .css extension).
	// Returns ErrStyleNotFound if the stylesheet doesn't exist.
	LoadStyle(name string) (string, error)
}

package plotpy

// GraphMaker is implemented by every drawable entity. Plot.Add depends on
// nothing else, so new entity kinds compose without changes to Plot.
type GraphMaker interface {
	// Buffer returns the complete script text accumulated so far.
	Buffer() string
}

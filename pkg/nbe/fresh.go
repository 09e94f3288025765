package nbe

// Fresh is the next unused variable name of a display traversal.
// It lengthens by one character per step: x, xx, xxx, ...
type Fresh string

// FirstFresh starts every display traversal.
const FirstFresh Fresh = "x"

// Next returns the name after f.
func (f Fresh) Next() Fresh {
	return f + "x"
}

func (f Fresh) String() string {
	return string(f)
}

package preview

// fieldState distinguishes "set to a value", "explicitly cleared" and
// "not mentioned" for an optional request facet. The distinction matters in
// the three-way merge: an unmentioned field may be carried forward from the
// prior preview, a cleared one must not be.
type fieldState int

const (
	fieldUnset fieldState = iota
	fieldSet
	fieldClear
)

// Field is a tagged optional value for the request builder.
// The zero Field is Unset.
type Field[T any] struct {
	state fieldState
	value T
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{state: fieldSet, value: v}
}

// Clear returns a Field that explicitly removes the facet, overriding any
// value the prior preview state would otherwise contribute.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool { return f.state == fieldSet }

// IsClear reports whether the field was explicitly cleared.
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// IsUnset reports whether the field was not mentioned at all.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// Value returns the held value and whether one is set.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == fieldSet
}

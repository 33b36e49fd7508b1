package parsing

// AssignableField exposes set-once-consistently assignment into an output
// container. Repeated assignments of equal values succeed; a second
// assignment of a different value is a conflict, used to reject internally
// inconsistent inputs (the same field encoded twice with different values).
type AssignableField[T any, V comparable] interface {
	// Name returns the human-readable field name used in diagnostics.
	Name() string

	// TrySet assigns value unless the field already holds a different one.
	// Returns the resulting field value and false on conflict.
	TrySet(container T, value V) (V, bool)
}

func setWithoutReassigning[T any, V comparable](f AssignableField[T, V], out T, value V, pos int) *ParseError {
	prev, ok := f.TrySet(out, value)
	if ok {
		return nil
	}
	return fieldConflictError(pos, f.Name(), prev, value)
}

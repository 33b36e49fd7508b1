package parsing

// opList is a read-only operation sequence. Concatenation chains fragment
// operation slices through concatView instead of copying them at every
// fold step; a chain is materialized into a plain slice exactly once.
type opList[T any] interface {
	Len() int
	AppendTo(dst []Operation[T]) []Operation[T]
}

type sliceOps[T any] []Operation[T]

func (s sliceOps[T]) Len() int {
	return len(s)
}

func (s sliceOps[T]) AppendTo(dst []Operation[T]) []Operation[T] {
	return append(dst, s...)
}

// concatView presents two backing sequences as one without copying either.
type concatView[T any] struct {
	front, back opList[T]
}

func newConcatView[T any](front, back opList[T]) opList[T] {
	if front == nil || front.Len() == 0 {
		return back
	}
	if back == nil || back.Len() == 0 {
		return front
	}
	return &concatView[T]{front, back}
}

func (v *concatView[T]) Len() int {
	return v.front.Len() + v.back.Len()
}

func (v *concatView[T]) AppendTo(dst []Operation[T]) []Operation[T] {
	return v.back.AppendTo(v.front.AppendTo(dst))
}

func materializeOps[T any](l opList[T]) []Operation[T] {
	if l == nil || l.Len() == 0 {
		return nil
	}
	return l.AppendTo(make([]Operation[T], 0, l.Len()))
}

package parsing

// Shared test fixture: a map-backed output container with named int fields
// and a negative flag, enough to exercise every operation kind.

type record struct {
	values map[string]int
	longs  map[string]int64
	neg    bool
	marks  []string
}

func newRecord() *record {
	return &record{values: map[string]int{}, longs: map[string]int64{}}
}

func (r *record) Copy() *record {
	values := make(map[string]int, len(r.values))
	for k, v := range r.values {
		values[k] = v
	}
	longs := make(map[string]int64, len(r.longs))
	for k, v := range r.longs {
		longs[k] = v
	}
	marks := make([]string, len(r.marks))
	copy(marks, r.marks)
	return &record{values, longs, r.neg, marks}
}

type field string

func (f field) Name() string {
	return string(f)
}

func (f field) TrySet(r *record, v int) (int, bool) {
	prev, found := r.values[string(f)]
	if !found {
		r.values[string(f)] = v
		return v, true
	}
	return prev, prev == v
}

type longField string

func (f longField) Name() string {
	return string(f)
}

func (f longField) TrySet(r *record, v int64) (int64, bool) {
	prev, found := r.longs[string(f)]
	if !found {
		r.longs[string(f)] = v
		return v, true
	}
	return prev, prev == v
}

func digits(length int, name string) *NumberSpan[*record] {
	return NewNumberSpan[*record](NewUnsignedIntConsumer(length, field(name), false))
}

func lit(s string) *PlainString[*record] {
	return NewPlainString[*record](s)
}

func mark(name string) *Modify[*record] {
	return NewModify(func(r *record) { r.marks = append(r.marks, name) })
}

func frag(ops ...Operation[*record]) *Structure[*record] {
	return NewStructure(ops...)
}

func expectPanic(f func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	f()
	return
}

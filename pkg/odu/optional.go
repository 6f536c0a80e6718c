package odu

// Optional is a two-variant present/absent container for values that may
// legitimately be missing without that being an error.
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Value returns the contained value, or the zero value when absent.
func (o Optional[T]) Value() T {
	return o.value
}

func (o Optional[T]) ValueOK() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// ToOutcome converts the Optional to an Outcome, supplying the error used for
// the absent case.
func (o Optional[T]) ToOutcome(err error) Outcome[T] {
	if o.present {
		return Success(o.value)
	}
	return Fail[T](err)
}

// FromOutcome drops the error of a failed Outcome, keeping only presence.
func FromOutcome[T any](o Outcome[T]) Optional[T] {
	if o.IsSuccess() {
		return Present(o.Result())
	}
	return Absent[T]()
}

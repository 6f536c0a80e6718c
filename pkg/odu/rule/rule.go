package rule

// Rule is a composable boolean predicate over T.
type Rule[T any] func(T) bool

func Always[T any]() Rule[T] {
	return func(T) bool { return true }
}

func Never[T any]() Rule[T] {
	return func(T) bool { return false }
}

// And matches when every rule matches; vacuously true when empty.
func And[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) bool {
		for _, r := range rules {
			if !r(v) {
				return false
			}
		}
		return true
	}
}

// Or matches when any rule matches; vacuously false when empty.
func Or[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) bool {
		for _, r := range rules {
			if r(v) {
				return true
			}
		}
		return false
	}
}

func Not[T any](r Rule[T]) Rule[T] {
	return func(v T) bool {
		return !r(v)
	}
}

// Nor matches when no rule matches.
func Nor[T any](rules ...Rule[T]) Rule[T] {
	return Not(Or(rules...))
}

// Matches filters items down to those satisfying r.
func Matches[T any](items []T, r Rule[T]) []T {
	matched := make([]T, 0)
	for _, v := range items {
		if r(v) {
			matched = append(matched, v)
		}
	}
	return matched
}

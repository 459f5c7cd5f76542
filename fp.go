package rlist

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

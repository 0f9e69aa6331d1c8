package pipeline

// Apply runs value through each transform in order and returns the result.
// Rendering in this module is expressed as chains of pure functions, so most
// callers pass a handful of string transforms.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable transform from a chain of transforms.
// Preferred over repeated Apply calls when the same chain is used in more
// than one place.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

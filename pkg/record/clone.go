package record

// CloneAll returns a copy of s with every element cloned. A nil slice stays nil.
func CloneAll[T interface{ Clone() T }](s []T) []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s))
	for i, v := range s {
		result[i] = v.Clone()
	}
	return result
}

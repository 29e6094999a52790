package weasel

// EqualChars compares two strings character by character and counts how many
// positions hold the same character. Comparison stops at the length of the
// shorter string; trailing characters of the longer one are ignored, so
// mismatched lengths are not an error. Characters are compared by exact
// equality (case-sensitive, no normalization). Symmetric in its arguments.
func EqualChars(stringA, stringB string) int {
	a := []rune(stringA)
	b := []rune(stringB)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	count := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			count++
		}
	}
	return count
}

package document

import "bytes"

// DetectIndent infers the indentation width of a document from the GCD of
// its non-zero leading-space counts, falling back when the text gives no
// usable evidence (single line, tabs, compact JSON).
func DetectIndent(data []byte, fallback int) int {
	indents := []int{}
	for _, ln := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(ln)) == 0 {
			continue
		}
		if n := leadingSpaces(ln); n > 0 {
			indents = append(indents, n)
		}
	}
	if len(indents) == 0 {
		return fallback
	}

	result := indents[0]
	for _, n := range indents[1:] {
		result = gcd(result, n)
		if result == 1 {
			break
		}
	}
	if result > 0 && result <= 8 {
		return result
	}
	return fallback
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func leadingSpaces(line []byte) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

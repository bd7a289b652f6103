package validator

import (
	"sort"
	"strings"
)

// maxSuggestions caps how many alternatives a diagnostic includes. Dumping every option within
// range is rarely useful to a human; five or fewer keeps the message readable.
const maxSuggestions = 5

// maxSuggestionDistance is the farthest lexical distance an option can be from the input and
// still be offered as a suggestion.
const maxSuggestionDistance = 2

// suggestionList returns up to maxSuggestions options that are lexically close to input, nearest
// first. It's used to build "did you mean ...?" hints for undefined field and type names.
func suggestionList(input string, options []string) []string {
	type candidate struct {
		option   string
		distance int
	}
	var candidates []candidate
	for _, option := range options {
		if d := lexicalDistance(input, option); d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{option, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	ret := make([]string, len(candidates))
	for i, c := range candidates {
		ret[i] = c.option
	}
	return ret
}

// suggestionMessage formats a list of suggestions as a trailing clause for an error message, or
// an empty string if there are none.
func suggestionMessage(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " Did you mean " + quotedList(suggestions) + "?"
}

func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "\"" + item + "\""
	}
	switch len(quoted) {
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}

// lexicalDistance computes the Damerau-Levenshtein distance between a and b, treating a
// case-only difference as a single edit so that mis-cased names are still recognized as close
// matches.
func lexicalDistance(aStr, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)
	if a == b {
		return 1
	}

	aLen, bLen := len(a), len(b)
	d := make([][]int, aLen+1)
	for i := 0; i <= aLen; i++ {
		d[i] = make([]int, bLen+1)
		d[i][0] = i
	}
	for j := 0; j <= bLen; j++ {
		d[0][j] = j
	}

	for i := 1; i <= aLen; i++ {
		for j := 1; j <= bLen; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			min := d[i-1][j] + 1
			if v := d[i][j-1] + 1; v < min {
				min = v
			}
			if v := d[i-1][j-1] + cost; v < min {
				min = v
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if v := d[i-2][j-2] + cost; v < min {
					min = v
				}
			}

			d[i][j] = min
		}
	}

	return d[aLen][bLen]
}

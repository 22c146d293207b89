package highlight

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxLine is the highest line number ParseRanges will expand. Larger
// maxLine arguments are lowered to it.
const MaxLine = 1 << 20

// SyntaxError reports the tokens of a highlight spec that could not be
// parsed. The lines that did parse are still returned alongside it.
type SyntaxError struct {
	Spec   string
	Tokens []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid highlight spec %q: unparsable tokens %q", e.Spec, e.Tokens)
}

// ParseRanges parses a highlight spec such as "2,4-6,9" into ascending,
// deduplicated 1-based line numbers no greater than maxLine.
//
// Each comma-separated token is a line number or an inclusive "start-end"
// range. Inverted ranges expand to nothing, and tokens that are not numbers
// are skipped.
func ParseRanges(spec string, maxLine int) []int {
	lines, _ := parse(spec, maxLine)
	return lines
}

// ParseRangesStrict is ParseRanges that also reports skipped tokens as a
// *SyntaxError.
func ParseRangesStrict(spec string, maxLine int) ([]int, error) {
	lines, bad := parse(spec, maxLine)
	if len(bad) > 0 {
		return lines, &SyntaxError{Spec: spec, Tokens: bad}
	}
	return lines, nil
}

// Contains reports whether line is in lines, which must be sorted.
func Contains(lines []int, line int) bool {
	_, ok := slices.BinarySearch(lines, line)
	return ok
}

// span is an inclusive range of line numbers.
type span struct{ start, end int }

func parse(spec string, maxLine int) (lines []int, bad []string) {
	lines = []int{}
	if strings.TrimSpace(spec) == "" {
		return lines, nil
	}
	maxLine = min(maxLine, MaxLine)

	var spans []span
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		start, end, ok := parseToken(tok)
		if !ok {
			bad = append(bad, tok)
			continue
		}
		// Values outside [1, maxLine] are dropped anyway.
		start, end = max(start, 1), min(end, maxLine)
		if start <= end {
			spans = append(spans, span{start, end})
		}
	}

	// Overlapping spans expand once, so the output never exceeds maxLine.
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.start, b.start) })
	for _, sp := range spans {
		if n := len(lines); n > 0 {
			sp.start = max(sp.start, lines[n-1]+1)
		}
		for n := sp.start; n <= sp.end; n++ {
			lines = append(lines, n)
		}
	}
	return lines, bad
}

func parseToken(tok string) (start, end int, ok bool) {
	lo, hi, isRange := strings.Cut(tok, "-")
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, false
	}
	if !isRange {
		return start, start, true
	}
	end, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

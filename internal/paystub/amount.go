package paystub

import (
	"strings"
	"unicode"
)

// Amounts on an ADP stub are printed as space-separated digit groups whose
// final group is always the two cents digits: "5 000 00" or "5 0 0 0 00" both
// mean 5000.00. A leading '-' marks a deduction; a trailing '*' is layout
// noise. Group shapes: first group 1-4 digits, later groups 1-3 digits.

const (
	maxFirstGroup = 4
	maxMidGroup   = 3
)

// amountGroup validates a single token as a digit group.
func amountGroup(tok string, first bool) (neg bool, digits string, ok bool) {
	if first && strings.HasPrefix(tok, "-") {
		neg = true
		tok = tok[1:]
	}
	tok = strings.TrimSuffix(tok, "*")
	tok = strings.ReplaceAll(tok, ",", "")
	max := maxMidGroup
	if first {
		max = maxFirstGroup
	}
	if tok == "" || len(tok) > max || !isDigits(tok) {
		return false, "", false
	}
	return neg, tok, true
}

// scanAmount reads one grouped amount starting at tokens[start]. It returns
// the canonical decimal rendering, the index of the first unconsumed token,
// and whether an amount was recognized at all.
func scanAmount(tokens []string, start int) (value string, next int, ok bool) {
	if start >= len(tokens) {
		return "", start, false
	}
	neg, first, ok := amountGroup(tokens[start], true)
	if !ok {
		return "", start, false
	}

	// A lone two-digit token is a complete amount only when nothing groupable
	// follows it; every longer amount is closed by its two-digit cents group.
	standalone := func() (string, int, bool) {
		if len(first) != 2 {
			return "", start, false
		}
		return renderAmount([]string{first}, neg), start + 1, true
	}

	i := start + 1
	if len(first) == 2 {
		if i >= len(tokens) {
			return standalone()
		}
		if _, _, groupable := amountGroup(tokens[i], false); !groupable {
			return standalone()
		}
	}

	parts := []string{first}
	for i < len(tokens) {
		_, d, ok := amountGroup(tokens[i], false)
		if !ok {
			break
		}
		parts = append(parts, d)
		i++
		if len(d) == 2 {
			return renderAmount(parts, neg), i, true
		}
	}
	// Never reached a cents group; fall back to the standalone reading.
	return standalone()
}

// scanAmounts reads consecutive amounts starting at tokens[start].
func scanAmounts(tokens []string, start int) []string {
	var amounts []string
	i := start
	for {
		v, next, ok := scanAmount(tokens, i)
		if !ok {
			break
		}
		amounts = append(amounts, v)
		i = next
	}
	return amounts
}

// renderAmount joins digit groups and inserts the decimal point two digits
// from the end: ["5","000","00"] -> "5000.00".
func renderAmount(parts []string, neg bool) string {
	all := strings.Join(parts, "")
	if len(all) < 2 {
		return ""
	}
	v := all[:len(all)-2] + "." + all[len(all)-2:]
	if neg {
		v = "-" + v
	}
	return v
}

// splitRow splits a tabular row into its leading label text and the amounts
// that follow it. A row matches only when a non-empty label precedes at least
// one amount; the label is whitespace-normalized but otherwise kept verbatim.
func splitRow(line string) (label string, amounts []string, ok bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil, false
	}
	if r := []rune(tokens[0]); !unicode.IsLetter(r[0]) {
		return "", nil, false
	}
	for i := 1; i < len(tokens); i++ {
		if _, _, found := scanAmount(tokens, i); found {
			return strings.Join(tokens[:i], " "), scanAmounts(tokens, i), true
		}
	}
	return "", nil, false
}

// firstAmount reads the leading amount out of a fragment of row text,
// tolerating a currency sign.
func firstAmount(s string) (string, bool) {
	s = strings.ReplaceAll(s, "$", " ")
	tokens := strings.Fields(s)
	v, _, ok := scanAmount(tokens, 0)
	return v, ok
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

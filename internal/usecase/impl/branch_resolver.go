// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"
	"unicode"

	"steakz/internal/domain/entity"
)

// normalizeAddress lowercases the input and strips every character that is
// not a letter or digit, so "42 Elm St." and "42 elm st" compare equal.
func normalizeAddress(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(r)
	}

	return normalized.String()
}

// addressMatchScore counts position-wise equal characters between the two
// normalized strings, up to the shorter length. This is a plain prefix
// alignment, not an edit distance: it is a crude heuristic kept on purpose,
// and it can mis-rank addresses of very different lengths.
func addressMatchScore(a, b string) int {
	na, nb := normalizeAddress(a), normalizeAddress(b)
	limit := len(na)
	if len(nb) < limit {
		limit = len(nb)
	}

	score := 0
	for i := 0; i < limit; i++ {
		if na[i] == nb[i] {
			score++
		}
	}

	return score
}

// resolveBranchByAddress picks the branch whose address scores highest
// against the delivery address. Ties, including an all-zero score, resolve
// to the earliest branch in the list. Returns nil for an empty list.
func resolveBranchByAddress(branches []*entity.Branch, deliveryAddress string) *entity.Branch {
	var best *entity.Branch
	bestScore := -1

	for _, branch := range branches {
		if score := addressMatchScore(deliveryAddress, branch.Address); score > bestScore {
			best = branch
			bestScore = score
		}
	}

	return best
}

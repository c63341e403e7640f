package index

// levenshtein computes the edit distance between a and b, giving up as soon
// as the distance provably exceeds maxDist. Returns (distance, true) when the
// distance is within the bound, (0, false) otherwise.
func levenshtein(a, b string, maxDist int) (int, bool) {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > maxDist {
		return 0, false
	}
	if la == 0 {
		return lb, lb <= maxDist
	}
	if lb == 0 {
		return la, la <= maxDist
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
			if min < rowMin {
				rowMin = min
			}
		}
		if rowMin > maxDist {
			return 0, false
		}
		prev, curr = curr, prev
	}

	if prev[lb] > maxDist {
		return 0, false
	}
	return prev[lb], true
}

package corrector

// damerauLevenshtein is the restricted (optimal string alignment) distance:
// insert, delete and substitute cost 1, and an adjacent swap is relaxed
// against d[i-2][j-2]+cost once both indices reach 2.
func damerauLevenshtein(first, second string) int {
	ra, rb := []rune(first), []rune(second)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				x = min(x, prev2[j-2]+cost)
			}
			curr[j] = x
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}

// distanceBudget scales the tolerated edit cost with word length.
func distanceBudget(length int) int {
	switch {
	case length < 5:
		return 1
	case length < 7:
		return 2
	default:
		return 3
	}
}

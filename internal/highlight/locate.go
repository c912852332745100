package highlight

// Locate returns the ascending start offsets of query inside a folded corpus.
// Matching ignores case. After a hit the scan resumes past the matched text,
// so of any overlapping run only the first occurrence is reported.
func Locate(corpus []rune, query string) []int {
	needle := fold(query)
	if len(needle) == 0 || len(needle) > len(corpus) {
		return nil
	}

	var starts []int
	for i := 0; i+len(needle) <= len(corpus); {
		if matchesAt(corpus, i, needle) {
			starts = append(starts, i)
			i += len(needle)
			continue
		}
		i++
	}
	return starts
}

// Spans converts start offsets into inclusive spans for a query of n runes.
func Spans(starts []int, n int) []Span {
	if n <= 0 {
		return nil
	}
	spans := make([]Span, 0, len(starts))
	for _, s := range starts {
		spans = append(spans, Span{Start: s, End: s + n - 1})
	}
	return spans
}

func matchesAt(corpus []rune, at int, needle []rune) bool {
	for j, r := range needle {
		if corpus[at+j] != r {
			return false
		}
	}
	return true
}

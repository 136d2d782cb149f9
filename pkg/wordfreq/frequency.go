package wordfreq

import "sort"

// FrequencyMap считает вхождения: токен -> число.
type FrequencyMap map[string]int

// Tokenizer turns one raw text field into the tokens that should be counted.
type Tokenizer interface {
	Tokens(text string) []string
}

// Count folds records into a fresh FrequencyMap. Nil records are skipped.
func Count(records []*string, t Tokenizer) FrequencyMap {
	freq := make(FrequencyMap)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		for _, tok := range t.Tokens(*rec) {
			freq[tok]++
		}
	}
	return freq
}

// Total returns the sum of all counts.
func (f FrequencyMap) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// WordCount is a single FrequencyMap entry.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Top returns up to n entries ordered by count desc, then word asc.
// n <= 0 returns every entry.
func (f FrequencyMap) Top(n int) []WordCount {
	out := make([]WordCount, 0, len(f))
	for w, c := range f {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Limit returns a new map holding only the Top(n) entries.
func (f FrequencyMap) Limit(n int) FrequencyMap {
	if n <= 0 || len(f) <= n {
		return f
	}
	out := make(FrequencyMap, n)
	for _, wc := range f.Top(n) {
		out[wc.Word] = wc.Count
	}
	return out
}

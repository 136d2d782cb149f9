package wordfreq

import "strings"

var quoteStripper = strings.NewReplacer(`'`, "", `"`, "")

// StackTokenizer handles comma-joined technology lists such as
// "'Java', 'Spring Boot'". Pieces are counted exactly as split: surrounding
// whitespace is kept, so "Java, C++" yields "Java" and " C++". The one
// exception is a piece that is empty or whitespace-only ("Go,,", "Go, "):
// it is dropped so the map never gets a blank key.
type StackTokenizer struct{}

func (StackTokenizer) Tokens(text string) []string {
	text = quoteStripper.Replace(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := parts[:0]
	for _, p := range parts {
		// trailing commas and ", ," produce blank pieces
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

package analyzer

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownParams are parameter names that show up over and over in real
// applications and are worth a second look when discovered.
var knownParams = []string{
	"id", "uid", "uuid", "guid", "user", "user_id", "username",
	"q", "query", "search", "keyword", "keywords",
	"page", "limit", "offset", "sort", "order",
	"token", "csrf_token", "api_key", "apikey", "key", "secret",
	"access_token", "session", "session_id", "sessionToken",
	"callback", "redirect", "redirect_url", "url", "next", "return",
	"file", "path", "filename", "dir",
	"email", "password", "name", "type", "view", "lang", "format",
	"debug", "admin", "test", "role", "action",
}

const interestingDistance = 3

// Ranker scores discovered names against the built-in wordlist of
// commonly attacked parameter names.
type Ranker struct {
	wordlist []string
}

func NewRanker() *Ranker {
	return &Ranker{wordlist: knownParams}
}

// Rank returns the Levenshtein distance from the closest known
// parameter name that fuzzy-matches, or -1 when nothing matches.
func (r *Ranker) Rank(name string) int {
	best := -1
	for _, w := range r.wordlist {
		if strings.EqualFold(name, w) {
			return 0
		}
		rank := fuzzy.RankMatchNormalizedFold(w, name)
		if rank >= 0 && (best == -1 || rank < best) {
			best = rank
		}
	}
	return best
}

// IsInteresting reports whether a name is close enough to a known
// parameter to be highlighted in the report.
func (r *Ranker) IsInteresting(name string) bool {
	rank := r.Rank(name)
	return rank >= 0 && rank <= interestingDistance
}

// Package textdiff compares disclosure narratives at word or sentence
// granularity. It answers the "what changed" questions the audit ledger
// cannot: the ledger records that a narrative field changed, the diff shows
// where inside the text.
//
// All functions are pure and total; empty inputs yield empty results, never
// errors. Alignment cost is O(len(old) * len(new)) tokens, so callers bound
// input size.
package textdiff

import "strings"

// Op classifies a diff segment.
type Op string

const (
	OpAdded     Op = "added"
	OpRemoved   Op = "removed"
	OpUnchanged Op = "unchanged"
)

// Segment is one run of tokens sharing an op. Segments are ordered;
// concatenating {unchanged, removed} segments reconstructs the old text and
// {unchanged, added} the new text, up to whitespace normalization.
type Segment struct {
	Text string `json:"text"`
	Op   Op     `json:"change_type"`
}

// Words diffs two texts at word granularity via a longest-common-subsequence
// alignment. Identical inputs produce only unchanged segments.
func Words(oldText, newText string) []Segment {
	return diffTokens(strings.Fields(oldText), strings.Fields(newText))
}

// Sentences diffs two texts at sentence granularity for coarser
// presentation. Sentences split after terminal punctuation (. ! ?).
func Sentences(oldText, newText string) []Segment {
	return diffTokens(splitSentences(oldText), splitSentences(newText))
}

// splitSentences cuts text after runs of sentence-terminal punctuation.
// Whitespace between sentences is dropped; each token keeps its own
// terminal punctuation so round-trips preserve it.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	terminal := false

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?':
			current.WriteRune(r)
			terminal = true
		default:
			if terminal && !strings.ContainsRune(".!?", r) {
				flush()
				terminal = false
			}
			current.WriteRune(r)
		}
	}
	flush()
	return sentences
}

// diffTokens aligns two token sequences with a dynamic-programming LCS table
// and walks it back into ordered segments, merging adjacent tokens that
// share an op.
func diffTokens(oldTokens, newTokens []string) []Segment {
	n, m := len(oldTokens), len(newTokens)

	// lcs[i][j] = length of the LCS of oldTokens[i:] and newTokens[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldTokens[i] == newTokens[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	type tokenOp struct {
		token string
		op    Op
	}
	var ops []tokenOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldTokens[i] == newTokens[j]:
			ops = append(ops, tokenOp{oldTokens[i], OpUnchanged})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, tokenOp{oldTokens[i], OpRemoved})
			i++
		default:
			ops = append(ops, tokenOp{newTokens[j], OpAdded})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, tokenOp{oldTokens[i], OpRemoved})
	}
	for ; j < m; j++ {
		ops = append(ops, tokenOp{newTokens[j], OpAdded})
	}

	segments := []Segment{}
	for _, t := range ops {
		if len(segments) > 0 && segments[len(segments)-1].Op == t.op {
			segments[len(segments)-1].Text += " " + t.token
			continue
		}
		segments = append(segments, Segment{Text: t.token, Op: t.op})
	}
	return segments
}

// Reconstruct joins the segments whose op is in keep, normalizing
// whitespace. Reconstruct(segments, OpUnchanged, OpRemoved) rebuilds the
// old text; Reconstruct(segments, OpUnchanged, OpAdded) the new.
func Reconstruct(segments []Segment, keep ...Op) string {
	var parts []string
	for _, segment := range segments {
		for _, op := range keep {
			if segment.Op == op {
				parts = append(parts, segment.Text)
				break
			}
		}
	}
	return strings.Join(parts, " ")
}

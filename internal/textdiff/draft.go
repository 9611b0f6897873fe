package textdiff

// DraftStatus classifies a rolled-over record against its source-period
// counterpart.
type DraftStatus struct {
	IsDraftCopy   bool      `json:"is_draft_copy"`
	HasBeenEdited bool      `json:"has_been_edited"`
	Summary       Summary   `json:"summary"`
	Segments      []Segment `json:"segments"`
}

// AnalyzeDraft diffs a record's current content against its rollover
// source. hasLineage reports whether the record carries a source reference;
// the caller (the rollover collaborator owns lineage) resolves the source
// content. Without lineage there is nothing to diff against: the whole
// current content is one added segment and HasBeenEdited is true.
func AnalyzeDraft(sourceContent, currentContent string, hasLineage bool) DraftStatus {
	if !hasLineage {
		segments := []Segment{}
		if currentContent != "" {
			segments = append(segments, Segment{Text: currentContent, Op: OpAdded})
		}
		summary := summarize(segments)
		// Original work counts as changed even when the content is still
		// blank, so the summary never contradicts HasBeenEdited.
		summary.HasChanges = true
		return DraftStatus{
			IsDraftCopy:   false,
			HasBeenEdited: true,
			Summary:       summary,
			Segments:      segments,
		}
	}

	segments := Words(sourceContent, currentContent)
	summary := summarize(segments)
	return DraftStatus{
		IsDraftCopy:   true,
		HasBeenEdited: summary.HasChanges,
		Summary:       summary,
		Segments:      segments,
	}
}

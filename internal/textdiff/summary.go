package textdiff

// Summary aggregates a word-level diff for list views and change badges.
type Summary struct {
	TotalSegments   int  `json:"total_segments"`
	AddedSegments   int  `json:"added_segments"`
	RemovedSegments int  `json:"removed_segments"`
	HasChanges      bool `json:"has_changes"`
}

// Summarize derives summary statistics from the word-level diff of the two
// texts.
func Summarize(oldText, newText string) Summary {
	return summarize(Words(oldText, newText))
}

func summarize(segments []Segment) Summary {
	s := Summary{TotalSegments: len(segments)}
	for _, segment := range segments {
		switch segment.Op {
		case OpAdded:
			s.AddedSegments++
		case OpRemoved:
			s.RemovedSegments++
		}
	}
	s.HasChanges = s.AddedSegments > 0 || s.RemovedSegments > 0
	return s
}

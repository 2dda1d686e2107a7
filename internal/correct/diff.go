package correct

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSpan is one region of the original/corrected diff. Delete spans
// carry only original positions, insert spans only corrected positions.
type DiffSpan struct {
	Type      string `json:"type"` // "equal" | "delete" | "insert"
	Text      string `json:"text"`
	OrigStart *int   `json:"orig_start,omitempty"`
	OrigEnd   *int   `json:"orig_end,omitempty"`
	CorrStart *int   `json:"corr_start,omitempty"`
	CorrEnd   *int   `json:"corr_end,omitempty"`
}

// ComputeDiffSpans produces character-level diff spans between the
// original and corrected text, cleaned up to word-ish boundaries for
// display.
func ComputeDiffSpans(original, corrected string) []DiffSpan {
	spans := []DiffSpan{}
	if original == "" && corrected == "" {
		return spans
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, corrected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	origPos, corrPos := 0, 0
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			spans = append(spans, DiffSpan{
				Type:      "equal",
				Text:      d.Text,
				OrigStart: intp(origPos),
				OrigEnd:   intp(origPos + n),
				CorrStart: intp(corrPos),
				CorrEnd:   intp(corrPos + n),
			})
			origPos += n
			corrPos += n
		case diffmatchpatch.DiffDelete:
			spans = append(spans, DiffSpan{
				Type:      "delete",
				Text:      d.Text,
				OrigStart: intp(origPos),
				OrigEnd:   intp(origPos + n),
			})
			origPos += n
		case diffmatchpatch.DiffInsert:
			spans = append(spans, DiffSpan{
				Type:      "insert",
				Text:      d.Text,
				CorrStart: intp(corrPos),
				CorrEnd:   intp(corrPos + n),
			})
			corrPos += n
		}
	}
	return spans
}

func intp(v int) *int { return &v }

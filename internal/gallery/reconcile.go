// Package gallery derives the customer-facing view of a project's photos:
// the selected count Y, the per-photo annotation state, and the filtered,
// sorted photo list. Everything is computed fresh from the rows passed in.
package gallery

import "github.com/iamsonghee/photo-selection/internal/models"

// PhotoState는 selections 행에서 뽑은 사진 단위 고객 상태.
type PhotoState struct {
	Rating  *int             `json:"rating,omitempty"`
	Color   *models.ColorTag `json:"color,omitempty"`
	Comment *string          `json:"comment,omitempty"`
}

// ComputeY counts distinct selected photos. Y is always derived from
// selection rows, never from a photo's own cached flag.
func ComputeY(selections []models.Selection) int {
	seen := make(map[string]struct{}, len(selections))
	for _, s := range selections {
		seen[s.PhotoID] = struct{}{}
	}
	return len(seen)
}

// SelectedIDSet returns the membership set {photoId : selection row exists}.
func SelectedIDSet(selections []models.Selection) map[string]struct{} {
	ids := make(map[string]struct{}, len(selections))
	for _, s := range selections {
		ids[s.PhotoID] = struct{}{}
	}
	return ids
}

// PhotoStates maps photoId → annotation (rating/color/comment).
func PhotoStates(selections []models.Selection) map[string]PhotoState {
	states := make(map[string]PhotoState, len(selections))
	for _, s := range selections {
		states[s.PhotoID] = PhotoState{
			Rating:  s.Rating,
			Color:   s.ColorTag,
			Comment: s.Comment,
		}
	}
	return states
}

// Toggle flips membership of photoID and returns a new set; the input is not
// mutated. Annotation state lives outside the set, so re-adding keeps it.
func Toggle(selected map[string]struct{}, photoID string) map[string]struct{} {
	out := make(map[string]struct{}, len(selected)+1)
	for id := range selected {
		out[id] = struct{}{}
	}
	if _, ok := out[photoID]; ok {
		delete(out, photoID)
	} else {
		out[photoID] = struct{}{}
	}
	return out
}

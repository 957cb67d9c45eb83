package gallery

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/iamsonghee/photo-selection/internal/models"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// 필터 쿼리 파라미터 이름 (URL과 동기화)
const (
	ParamRating   = "rating"
	ParamColorTag = "color_tag"
	ParamSort     = "sort"
	ParamSelected = "selected"
)

const (
	ColorAll  = "all"
	ColorNone = "none"
)

// Filter is the gallery filter state. Zero-ish defaults mean "all".
type Filter struct {
	Star     int       // 1..5, 0 = all
	Color    string    // red|yellow|green|blue|purple|none|all
	Selected string    // all|selected
	Sort     SortOrder // newest|oldest
}

// ParseFilter reads the filter state from URL query values. Unknown or
// malformed values fall back to the default ("all" / newest).
func ParseFilter(values url.Values) Filter {
	f := Filter{Star: 0, Color: ColorAll, Selected: "all", Sort: SortNewest}

	if v := values.Get(ParamRating); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 5 {
			f.Star = n
		}
	}
	if v := values.Get(ParamColorTag); v != "" {
		if v == ColorAll || v == ColorNone || models.IsValidColorTag(models.ColorTag(v)) {
			f.Color = v
		}
	}
	if values.Get(ParamSort) == string(SortOldest) {
		f.Sort = SortOldest
	}
	if values.Get(ParamSelected) == "selected" {
		f.Selected = "selected"
	}
	return f
}

// QueryString rebuilds the URL query for the current filter state.
// 기본값은 생략한다.
func (f Filter) QueryString() string {
	params := url.Values{}
	if f.Star != 0 {
		params.Set(ParamRating, strconv.Itoa(f.Star))
	}
	if f.Color != ColorAll && f.Color != "" {
		params.Set(ParamColorTag, f.Color)
	}
	if f.Sort != SortNewest {
		params.Set(ParamSort, string(f.Sort))
	}
	if f.Selected != "all" {
		params.Set(ParamSelected, f.Selected)
	}
	qs := params.Encode()
	if qs == "" {
		return ""
	}
	return "?" + qs
}

// FilterAndSort applies the predicates in fixed order (selected → star →
// color) and sorts by upload order last. The result is a fresh slice, not a
// live view; re-invoke after any selection or tag mutation.
func FilterAndSort(
	photos []models.Photo,
	selectedIDs map[string]struct{},
	states map[string]PhotoState,
	f Filter,
) []models.Photo {
	list := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		if f.Selected == "selected" {
			if _, ok := selectedIDs[p.ID]; !ok {
				continue
			}
		}
		if f.Star != 0 {
			state, ok := states[p.ID]
			if !ok || state.Rating == nil || *state.Rating != f.Star {
				continue
			}
		}
		switch f.Color {
		case ColorAll, "":
		case ColorNone:
			if state, ok := states[p.ID]; ok && state.Color != nil {
				continue
			}
		default:
			state, ok := states[p.ID]
			if !ok || state.Color == nil || string(*state.Color) != f.Color {
				continue
			}
		}
		list = append(list, p)
	}

	if f.Sort == SortOldest {
		sort.Slice(list, func(i, j int) bool { return list[i].OrderIndex < list[j].OrderIndex })
	} else {
		sort.Slice(list, func(i, j int) bool { return list[i].OrderIndex > list[j].OrderIndex })
	}
	return list
}

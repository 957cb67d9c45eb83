package gallery

import (
	"net/url"
	"testing"

	"github.com/iamsonghee/photo-selection/internal/models"
)

func TestParseFilterDefaults(t *testing.T) {
	f := ParseFilter(url.Values{})
	if f.Star != 0 || f.Color != ColorAll || f.Selected != "all" || f.Sort != SortNewest {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}

func TestParseFilterValues(t *testing.T) {
	values := url.Values{}
	values.Set(ParamRating, "3")
	values.Set(ParamColorTag, "red")
	values.Set(ParamSort, "oldest")
	values.Set(ParamSelected, "selected")

	f := ParseFilter(values)
	if f.Star != 3 {
		t.Fatalf("expected star 3, got %d", f.Star)
	}
	if f.Color != "red" {
		t.Fatalf("expected color red, got %s", f.Color)
	}
	if f.Sort != SortOldest {
		t.Fatalf("expected oldest, got %s", f.Sort)
	}
	if f.Selected != "selected" {
		t.Fatalf("expected selected, got %s", f.Selected)
	}
}

func TestParseFilterRejectsGarbage(t *testing.T) {
	values := url.Values{}
	values.Set(ParamRating, "9")
	values.Set(ParamColorTag, "magenta")
	values.Set(ParamSort, "sideways")

	f := ParseFilter(values)
	if f.Star != 0 || f.Color != ColorAll || f.Sort != SortNewest {
		t.Fatalf("garbage must fall back to defaults: %+v", f)
	}
}

func TestQueryStringRoundTrip(t *testing.T) {
	f := Filter{Star: 2, Color: "green", Selected: "selected", Sort: SortOldest}
	qs := f.QueryString()
	values, err := url.ParseQuery(qs[1:])
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if got := ParseFilter(values); got != f {
		t.Fatalf("round trip mismatch: %+v != %+v", got, f)
	}

	// 기본값만 있으면 쿼리 생략
	if qs := (Filter{Color: ColorAll, Selected: "all", Sort: SortNewest}).QueryString(); qs != "" {
		t.Fatalf("expected empty query string, got %q", qs)
	}
}

func TestZeroValueFilterMeansAll(t *testing.T) {
	photos, selected, states := galleryFixture()

	got := FilterAndSort(photos, selected, states, Filter{})
	if len(got) != len(photos) {
		t.Fatalf("zero-value filter must keep all photos, got %v", ids(got))
	}
	// 정렬 기본값은 newest (orderIndex 내림차순)
	for i := 1; i < len(got); i++ {
		if got[i-1].OrderIndex < got[i].OrderIndex {
			t.Fatalf("zero-value filter must sort newest first: %v", ids(got))
		}
	}

	if qs := (Filter{}).QueryString(); qs != "" {
		t.Fatalf("zero-value filter must build an empty query, got %q", qs)
	}
}

func galleryFixture() ([]models.Photo, map[string]struct{}, map[string]PhotoState) {
	photos := []models.Photo{
		{ID: "1", OrderIndex: 1},
		{ID: "2", OrderIndex: 2},
		{ID: "3", OrderIndex: 3},
		{ID: "4", OrderIndex: 4},
	}
	selected := map[string]struct{}{"2": {}, "3": {}}
	states := map[string]PhotoState{
		"2": {Rating: intPtr(5), Color: colorPtr(models.ColorRed)},
		"3": {Rating: intPtr(3)},
	}
	return photos, selected, states
}

func ids(photos []models.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}

func TestFilterAndSortSelectedOnly(t *testing.T) {
	photos := []models.Photo{
		{ID: "1", OrderIndex: 1},
		{ID: "2", OrderIndex: 2},
	}
	selected := map[string]struct{}{"2": {}}

	got := FilterAndSort(photos, selected, nil, Filter{
		Color: ColorAll, Selected: "selected", Sort: SortNewest,
	})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected [2], got %v", ids(got))
	}
}

func TestFilterAndSortStar(t *testing.T) {
	photos, selected, states := galleryFixture()
	got := FilterAndSort(photos, selected, states, Filter{
		Star: 3, Color: ColorAll, Selected: "all", Sort: SortNewest,
	})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected [3], got %v", ids(got))
	}
}

func TestFilterAndSortColor(t *testing.T) {
	photos, selected, states := galleryFixture()

	got := FilterAndSort(photos, selected, states, Filter{
		Color: "red", Selected: "all", Sort: SortNewest,
	})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("red: expected [2], got %v", ids(got))
	}

	// none = 컬러 태그 없는 사진만
	got = FilterAndSort(photos, selected, states, Filter{
		Color: ColorNone, Selected: "all", Sort: SortOldest,
	})
	want := []string{"1", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("none: expected %v, got %v", want, ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("none: expected %v, got %v", want, ids(got))
		}
	}
}

func TestFilterAndSortOrder(t *testing.T) {
	photos, selected, states := galleryFixture()

	newest := FilterAndSort(photos, selected, states, Filter{
		Color: ColorAll, Selected: "all", Sort: SortNewest,
	})
	for i := 1; i < len(newest); i++ {
		if newest[i-1].OrderIndex < newest[i].OrderIndex {
			t.Fatalf("newest must be descending by orderIndex: %v", ids(newest))
		}
	}

	oldest := FilterAndSort(photos, selected, states, Filter{
		Color: ColorAll, Selected: "all", Sort: SortOldest,
	})
	for i := 1; i < len(oldest); i++ {
		if oldest[i-1].OrderIndex > oldest[i].OrderIndex {
			t.Fatalf("oldest must be ascending by orderIndex: %v", ids(oldest))
		}
	}
}

func TestFilterAndSortCombined(t *testing.T) {
	photos, selected, states := galleryFixture()
	got := FilterAndSort(photos, selected, states, Filter{
		Star: 5, Color: "red", Selected: "selected", Sort: SortNewest,
	})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected [2], got %v", ids(got))
	}
}

func TestFilterAndSortReturnsFreshSlice(t *testing.T) {
	photos, selected, states := galleryFixture()
	f := Filter{Color: ColorAll, Selected: "all", Sort: SortNewest}

	first := FilterAndSort(photos, selected, states, f)
	first[0] = models.Photo{ID: "mutated"}

	second := FilterAndSort(photos, selected, states, f)
	if second[0].ID == "mutated" {
		t.Fatal("result must be a fresh slice each call")
	}
}

package learn

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestIndexSortedAndComplete(t *testing.T) {
	arts := Index()
	if len(arts) < 6 {
		t.Fatalf("Index() returned %d articles, want at least 6", len(arts))
	}

	slugs := make([]string, len(arts))
	for i, art := range arts {
		slugs[i] = art.Slug
	}
	if !sort.StringsAreSorted(slugs) {
		t.Errorf("Index() not sorted by slug: %v", slugs)
	}

	for _, want := range []string{"emi", "sip", "ppf", "income-tax-regimes", "fire", "hra"} {
		if _, err := Get(want); err != nil {
			t.Errorf("expected article %q to exist: %v", want, err)
		}
	}
}

func TestArticlesParsed(t *testing.T) {
	for _, art := range Index() {
		if art.Title == "" || art.Title == art.Slug {
			t.Errorf("article %s has no parsed title", art.Slug)
		}
		if art.Summary == "" {
			t.Errorf("article %s has no summary", art.Slug)
		}
		if !strings.HasPrefix(art.Body, "# ") {
			t.Errorf("article %s body should start with its heading", art.Slug)
		}
		if strings.Contains(art.Body, "Related:") {
			t.Errorf("article %s body should not retain the Related line", art.Slug)
		}
	}
}

func TestRelatedSlugsResolve(t *testing.T) {
	for _, art := range Index() {
		for _, ref := range art.Related {
			if _, err := Get(ref); err != nil {
				t.Errorf("article %s links to %q: %v", art.Slug, ref, err)
			}
		}
	}
}

func TestGetUnknownSlug(t *testing.T) {
	_, err := Get("options-trading")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestParseArticle(t *testing.T) {
	raw := "# Title Here\n\nFirst paragraph summary.\n\nMore text.\n\nRelated: emi, sip\n"
	art := parseArticle("sample", raw)

	if art.Title != "Title Here" {
		t.Errorf("Title = %q, want %q", art.Title, "Title Here")
	}
	if art.Summary != "First paragraph summary." {
		t.Errorf("Summary = %q", art.Summary)
	}
	if len(art.Related) != 2 || art.Related[0] != "emi" || art.Related[1] != "sip" {
		t.Errorf("Related = %v, want [emi sip]", art.Related)
	}
	if strings.Contains(art.Body, "Related") {
		t.Errorf("Body retained the Related line: %q", art.Body)
	}
}

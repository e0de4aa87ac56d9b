// Package learn serves the embedded explainer articles behind the learn
// section. Articles are markdown files compiled into the binary; the first
// heading becomes the title and the first paragraph the summary.
package learn

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed articles/*.md
var articleFS embed.FS

// ErrNotFound is returned when no article exists for the requested slug.
var ErrNotFound = errors.New("learn article not found")

// Article is a single learn entry.
type Article struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Body    string   `json:"body"`
	Related []string `json:"related,omitempty"`
}

var articles map[string]Article

func init() {
	loaded, err := loadArticles()
	if err != nil {
		panic(fmt.Sprintf("learn: failed to load embedded articles: %v", err))
	}
	articles = loaded
}

// Index returns every article sorted by slug.
func Index() []Article {
	out := make([]Article, 0, len(articles))
	for _, art := range articles {
		out = append(out, art)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Get returns the article for the given slug, or ErrNotFound.
func Get(slug string) (Article, error) {
	art, ok := articles[slug]
	if !ok {
		return Article{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return art, nil
}

func loadArticles() (map[string]Article, error) {
	entries, err := articleFS.ReadDir("articles")
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]Article, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		raw, err := articleFS.ReadFile("articles/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read article %s: %w", name, err)
		}
		slug := strings.TrimSuffix(name, ".md")
		loaded[slug] = parseArticle(slug, string(raw))
	}
	return loaded, nil
}

// parseArticle extracts title, summary, and related links from markdown.
// The title comes from the first "# " heading, the summary from the first
// paragraph after it, and related slugs from an optional trailing
// "Related: a, b" line which is stripped from the body.
func parseArticle(slug, raw string) Article {
	art := Article{Slug: slug}

	var bodyLines []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Related:") {
			for _, ref := range strings.Split(strings.TrimPrefix(trimmed, "Related:"), ",") {
				if ref = strings.TrimSpace(ref); ref != "" {
					art.Related = append(art.Related, ref)
				}
			}
			continue
		}
		if art.Title == "" && strings.HasPrefix(trimmed, "# ") {
			art.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		} else if art.Title != "" && art.Summary == "" && trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			art.Summary = trimmed
		}
		bodyLines = append(bodyLines, line)
	}

	if art.Title == "" {
		art.Title = slug
	}
	art.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	return art
}

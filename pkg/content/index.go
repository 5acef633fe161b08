package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"assessment-assistant-be/internal/entity"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

// Index holds the help articles loaded from disk. Articles are read once
// at startup and never mutated; all accessors return copies.
type Index struct {
	articles []entity.Article
}

// Load reads every .yml/.yaml file in dir as one article. A missing
// directory yields an empty index, not an error.
func Load(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Index{}, nil
		}
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var articles []entity.Article
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read article %s: %w", e.Name(), err)
		}
		var article entity.Article
		if err := yaml.Unmarshal(data, &article); err != nil {
			return nil, fmt.Errorf("parse article %s: %w", e.Name(), err)
		}
		if article.Slug == "" {
			article.Slug = strings.TrimSuffix(e.Name(), ext)
		}
		articles = append(articles, article)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Title < articles[j].Title
	})

	return &Index{articles: articles}, nil
}

// Articles lists every article without bodies.
func (idx *Index) Articles() []entity.Article {
	out := make([]entity.Article, len(idx.articles))
	for i, a := range idx.articles {
		a.Body = ""
		out[i] = a
	}
	return out
}

// Get returns the article with the given slug, or nil.
func (idx *Index) Get(slug string) *entity.Article {
	for _, a := range idx.articles {
		if a.Slug == slug {
			copy := a
			return &copy
		}
	}
	return nil
}

// Search fuzzy-matches the query against title, category and tags and
// returns articles ranked by match score, bodies omitted.
func (idx *Index) Search(query string) []entity.Article {
	if strings.TrimSpace(query) == "" {
		return idx.Articles()
	}

	haystack := make([]string, len(idx.articles))
	for i, a := range idx.articles {
		haystack[i] = a.Title + " " + a.Category + " " + strings.Join(a.Tags, " ")
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]entity.Article, 0, len(matches))
	for _, m := range matches {
		a := idx.articles[m.Index]
		a.Body = ""
		out = append(out, a)
	}
	return out
}

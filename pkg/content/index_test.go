package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArticle(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadReadsYamlArticles(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "anforderungsanalyse.yml", `
slug: anforderungsanalyse
title: Anforderungsanalyse richtig nutzen
category: Grundlagen
tags: [analyse, einstieg]
summary: Erste Schritte mit der Anforderungsanalyse.
body: Der volle Artikeltext.
`)
	writeArticle(t, dir, "notes.txt", "kein artikel")

	idx, err := Load(dir)
	require.NoError(t, err)

	articles := idx.Articles()
	require.Len(t, articles, 1)
	assert.Equal(t, "anforderungsanalyse", articles[0].Slug)
	assert.Equal(t, "Grundlagen", articles[0].Category)
	assert.Empty(t, articles[0].Body, "listing omits bodies")
}

func TestLoadMissingDirYieldsEmptyIndex(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, idx.Articles())
}

func TestLoadDefaultsSlugFromFilename(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "interviewleitfaden.yaml", "title: Leitfaden erstellen\n")

	idx, err := Load(dir)
	require.NoError(t, err)

	require.NotNil(t, idx.Get("interviewleitfaden"))
}

func TestGetReturnsBodyAndCopies(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.yml", "slug: a\ntitle: A\nbody: Volltext\n")

	idx, err := Load(dir)
	require.NoError(t, err)

	a := idx.Get("a")
	require.NotNil(t, a)
	assert.Equal(t, "Volltext", a.Body)

	a.Title = "mutiert"
	assert.Equal(t, "A", idx.Get("a").Title)

	assert.Nil(t, idx.Get("fehlt"))
}

func TestSearchRanksFuzzyMatches(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.yml", "slug: a\ntitle: Anforderungsanalyse\ncategory: Grundlagen\n")
	writeArticle(t, dir, "b.yml", "slug: b\ntitle: Interviewleitfaden\ncategory: Durchführung\n")
	writeArticle(t, dir, "c.yml", "slug: c\ntitle: Onboarding planen\ntags: [einarbeitung]\n")

	idx, err := Load(dir)
	require.NoError(t, err)

	results := idx.Search("interview")
	require.NotEmpty(t, results)
	assert.Equal(t, "b", results[0].Slug)

	assert.Len(t, idx.Search(""), 3, "empty query lists everything")
	assert.Empty(t, idx.Search("zzzzzz"))
}

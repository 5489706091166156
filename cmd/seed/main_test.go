package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFixture(t, `
categories:
  - name: Dresses
    slug: dresses
    gender: women
products:
  - name: Kitenge Wrap Dress
    slug: kitenge-wrap-dress
    price: 60000
    category: dresses
    gender: women
    sizes: [S, M]
    featured: true
    in_stock: true
`)

	catalog, err := loadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Categories, 1)
	require.Len(t, catalog.Products, 1)

	p := catalog.Products[0]
	assert.Equal(t, "kitenge-wrap-dress", p.Slug)
	assert.Equal(t, 60000, p.Price)
	assert.Equal(t, []string{"S", "M"}, p.Sizes)
	assert.True(t, p.Featured)
	assert.True(t, p.InStock)
}

func TestLoadCatalogRejectsBadGender(t *testing.T) {
	path := writeFixture(t, `
products:
  - name: Hat
    slug: hat
    price: 1000
    gender: kids
`)

	_, err := loadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogRejectsNegativePrice(t *testing.T) {
	path := writeFixture(t, `
products:
  - name: Hat
    slug: hat
    price: -1
    gender: unisex
`)

	_, err := loadCatalog(path)
	assert.Error(t, err)
}

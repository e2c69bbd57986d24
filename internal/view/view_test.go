package view

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
)

func TestRenderList(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageList, ListPage{Items: []model.Item{
		{ID: 1, Item: "Widgets", Quantity: 5},
		{ID: 2, Item: "<Gadgets>", Quantity: 12},
	}}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `href="/stuff/item/1"`)
	assert.Contains(t, html, "Widgets")
	assert.Contains(t, html, "&lt;Gadgets&gt;")
	assert.Contains(t, html, `action="/stuff"`)
}

func TestRenderEmptyList(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageList, ListPage{}, nil))

	assert.Contains(t, buf.String(), "Nothing in stock.")
}

func TestRenderDetail(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	desc := "Small and shiny"

	var buf bytes.Buffer
	err = r.Render(&buf, PageDetail, DetailPage{Item: &model.Item{ID: 4, Item: "Gizmos", Quantity: 1, Description: &desc}}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Gizmos | Inventory</title>")
	assert.Contains(t, html, `action="/stuff/item/4"`)
	assert.Contains(t, html, `href="/stuff/item/4/delete"`)
	assert.Contains(t, html, "Small and shiny")
}

func TestRenderDetailNullDescription(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageDetail, DetailPage{Item: &model.Item{ID: 3, Item: "Sprockets", Quantity: 40}}, nil))

	assert.Contains(t, buf.String(), "<em>none</em>")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", nil, nil))
}

func TestStatic(t *testing.T) {
	css, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)

	assert.Contains(t, string(css), "font-family")
}

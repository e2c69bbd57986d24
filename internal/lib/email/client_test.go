package email

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	logger := zerolog.Nop()

	c, err := NewClient(config.DefaultConfig(), &logger)
	require.NoError(t, err)

	return c
}

func TestRenderPreview(t *testing.T) {
	c := newTestClient(t)

	for name, data := range PreviewData {
		html, err := c.Render(name, data)
		require.NoError(t, err, name)

		assert.Contains(t, html, "Widgets")
		assert.Contains(t, html, "Inventory item updated")
		assert.Contains(t, html, `href="http://localhost:8080/stuff/item/7"`)
	}
}

func TestRenderEscapes(t *testing.T) {
	c := newTestClient(t)

	html, err := c.Render(TemplateItemChanged, map[string]string{
		"Action": "created",
		"ItemID": "1",
		"Item":   "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "Quantity on hand")
}

func TestRenderUnknownTemplate(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Render(Template("missing"), nil)
	assert.Error(t, err)
}

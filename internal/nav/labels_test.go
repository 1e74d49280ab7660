package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenLabels(t *testing.T) {
	nested := map[string]any{
		"search": map[string]any{
			"buttonText": "Buscar",
			"footer":     map[string]any{"closeText": "fechar"},
		},
		"sidebarMenuLabel": "Menu",
	}
	labels, err := FlattenLabels(nested)
	require.NoError(t, err)
	assert.Equal(t, Labels{
		LabelSearchButtonText:      "Buscar",
		LabelSearchFooterCloseText: "fechar",
		LabelSidebarMenu:           "Menu",
	}, labels)

	assert.Equal(t, nested, labels.Nested())
}

func TestFlattenLabels_RejectsNonString(t *testing.T) {
	_, err := FlattenLabels(map[string]any{"outline": map[string]any{"label": 3}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "labels.outline.label")
}

func TestLabels_GetAndPrefixed(t *testing.T) {
	l := Labels{LabelDocFooterPrev: "Página anterior", LabelDocFooterNext: "", "docFooterExtra": "x"}
	assert.Equal(t, "Página anterior", l.Get(LabelDocFooterPrev, "Previous page"))
	assert.Equal(t, "Next page", l.Get(LabelDocFooterNext, "Next page"))
	assert.Equal(t, Labels{"prev": "Página anterior", "next": ""}, l.Prefixed("docFooter"))
	assert.Equal(t, []string{"docFooter.next", "docFooter.prev", "docFooterExtra"}, l.Keys())
}

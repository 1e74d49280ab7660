package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

func TestNormalizeDocumentEnums(t *testing.T) {
	doc := &Document{
		Search:  nav.Search{Provider: " Algolia "},
		Logging: &LoggingConfig{Level: "DEBUG", Format: "Json"},
		Render:  &RenderConfig{Format: "Vite"},
	}
	res, err := NormalizeDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, nav.SearchAlgolia, doc.Search.Provider)
	assert.Equal(t, LogLevelDebug, doc.Logging.Level)
	assert.Equal(t, LogFormatJSON, doc.Logging.Format)
	assert.Equal(t, RenderVitePress, doc.Render.Format)
	assert.Len(t, res.Warnings, 4)
}

func TestNormalizeDocumentUnknowns(t *testing.T) {
	doc := &Document{
		Search:  nav.Search{Provider: "elastic"},
		Logging: &LoggingConfig{Level: "loud"},
	}
	res, err := NormalizeDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, nav.SearchLocal, doc.Search.Provider)
	assert.Equal(t, LogLevelInfo, doc.Logging.Level)
	assert.Equal(t, LogFormat(""), doc.Logging.Format)
	assert.Len(t, res.Warnings, 2)
}

func TestNormalizeDocumentLeavesEmptyAlone(t *testing.T) {
	doc := &Document{Version: "1.0"}
	res, err := NormalizeDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, nav.SearchProvider(""), doc.Search.Provider)
	assert.Nil(t, doc.Logging)
}

func TestNormalizeDocumentNil(t *testing.T) {
	_, err := NormalizeDocument(nil)
	assert.Error(t, err)
}

func TestParseRenderFormat(t *testing.T) {
	f, err := ParseRenderFormat("HUGO")
	require.NoError(t, err)
	assert.Equal(t, RenderHugo, f)

	f, err = ParseRenderFormat("")
	require.NoError(t, err)
	assert.Equal(t, RenderVitePress, f)

	_, err = ParseRenderFormat("docusaurus")
	assert.Error(t, err)
	assert.Contains(t, RenderFormats(), "hugo")
}

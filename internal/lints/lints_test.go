package lints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssverse/csslin/internal/css"
)

func parseDoc(t *testing.T, src string) *css.Document {
	t.Helper()
	doc := css.Parse("test.css", src)
	require.NotNil(t, doc.Stylesheet)
	return doc
}

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fishub/lookupload/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, ModePlain, lookup.All()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, lookup.Len())
	assert.Equal(t, "genderOptions\t3", lines[0])
	assert.Equal(t, "baitWeights\t20", lines[7])
	assert.Equal(t, "moonPhases\t8", lines[9])
}

func TestRenderSummary_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, ModeStyled, lookup.All()))

	out := buf.String()
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "lineThicknessOptions")
	assert.Contains(t, out, "20")
}

func TestRenderValues_Plain(t *testing.T) {
	c, _ := lookup.Get("genderOptions")

	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, ModePlain, []lookup.Category{c}))
	assert.Equal(t, "genderOptions\tDişi\ngenderOptions\tErkek\ngenderOptions\tBelli değil\n", buf.String())
}

func TestRenderValues_StyledKeepsOrder(t *testing.T) {
	c, _ := lookup.Get("moonPhases")

	var buf bytes.Buffer
	require.NoError(t, RenderValues(&buf, ModeStyled, []lookup.Category{c}))

	out := buf.String()
	assert.Contains(t, out, "moonPhases")
	assert.Less(t, strings.Index(out, "New Moon"), strings.Index(out, "Full Moon"))
	assert.Less(t, strings.Index(out, "Full Moon"), strings.Index(out, "Waning Crescent"))
}

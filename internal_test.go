package mdtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexLinesEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{""}, hexLines(nil))
	assert.Equal(t, []string{""}, hexLines([]byte{}))
}

func TestHexLinesFullLine(t *testing.T) {
	t.Parallel()
	lines := hexLines([]byte(strings.Repeat("\xab", bytesPerLine)))
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 47)
	assert.Equal(t, strings.TrimSuffix(strings.Repeat("ab ", bytesPerLine), " "), lines[0])
}

func TestHexLinesSplit(t *testing.T) {
	t.Parallel()
	b := make([]byte, 43)
	for i := range b {
		b[i] = byte(0xf0 + i%16)
	}
	lines := hexLines(b)
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 47)
	assert.Len(t, lines[1], 47)
	assert.Len(t, lines[2], 11*3-1)
	assert.True(t, strings.HasPrefix(lines[0], "f0 f1 f2"))
	assert.True(t, strings.HasSuffix(lines[2], "f9 fa"))
}

func TestEscape(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `a\|b\*c\<d\>e`, escape("a|b*c<d>e"))
	assert.Equal(t, `\\|`, escape(`\|`))
	assert.Equal(t, "nothing & here", escape("nothing & here"))
}

func TestBaseType(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"bigint":        "bigint",
		"DECIMAL(10,2)": "decimal",
		" varchar(5) ":  "varchar",
		"map(int,int)":  "map",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, baseType(in), in)
	}
}

func TestRenderCellKinds(t *testing.T) {
	t.Parallel()
	text := Column{Name: "t", Type: "varchar"}
	bin := Column{Name: "b", Type: TypeVarbinary}

	c, err := renderCell(nil, bin)
	require.NoError(t, err)
	assert.Equal(t, kindNull, c.kind)
	assert.Equal(t, []string{nullText}, c.lines)

	c, err = renderCell([]byte{}, bin)
	require.NoError(t, err)
	assert.Equal(t, kindBinary, c.kind)
	assert.Equal(t, []string{""}, c.lines)

	c, err = renderCell("a\n<b>", text)
	require.NoError(t, err)
	assert.Equal(t, kindText, c.kind)
	assert.Equal(t, []string{"a", `\<b\>`}, c.lines)
	assert.Equal(t, `a<br>\<b\>`, c.text())

	_, err = renderCell(1, bin)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want int
	}{
		"empty":      {in: "", want: 0},
		"ascii":      {in: "abc", want: 3},
		"wide":       {in: "网网", want: 4},
		"fullwidth":  {in: "\uff21", want: 2},
		"combining":  {in: "e\u0301", want: 2},
		"zero width": {in: "x\u200by", want: 3},
		"tab":        {in: "a\tb", want: 3},
		"ambiguous":  {in: "\u00b1", want: 1},
		"mixed":      {in: "go网", want: 4},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, displayWidth(tt.in))
		})
	}
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, AlignRight))
	assert.Equal(t, "网 ", alignCell("网", 3, AlignLeft))
	assert.Equal(t, "toolong", alignCell("toolong", 3, AlignRight))
	assert.Equal(t, "e\u0301 ", alignCell("e\u0301", 3, AlignLeft))
}

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	tbl := NewTable("KEY", "VALUE", "SOURCE").
		Row("path", "/srv/wp", "flag").
		Row("wpBinary", "wp", "default")

	out := tbl.String()
	assert.Equal(t, 2, tbl.Len())
	for _, want := range []string{"KEY", "VALUE", "SOURCE", "/srv/wp", "flag", "wpBinary", "default"} {
		assert.Contains(t, out, want)
	}
}

func TestTable_SetStyle(t *testing.T) {
	style := DefaultTableStyle()
	style.HeaderStyle = style.HeaderStyle.Bold(false)

	out := NewTable("A").Row("b").SetStyle(style).String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "b")
}

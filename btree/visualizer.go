package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// one color per tree level, cycling when the tree is deeper than the palette
var levelPalette = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
	color.New(color.FgRed),
}

/*
Visualizer renders a tree as one key per line, indented by the depth of the
node the key lives in and colored by level. Reading the lines top to bottom
gives the keys in ascending order, so both the ordering and the shape of the
tree are visible at a glance.
*/
type Visualizer[K cmp.Ordered] struct {
	Tree *Tree[K]
}

func (v *Visualizer[K]) Visualize() string {
	var sb strings.Builder
	writeIndented(&sb, v.Tree, true)
	return sb.String()
}

func writeIndented[K cmp.Ordered](sb *strings.Builder, t *Tree[K], colored bool) {
	t.Traverse(func(key K, depth int) {
		line := fmt.Sprintf("%s%v", strings.Repeat("  ", depth), key)
		if colored {
			line = levelPalette[depth%len(levelPalette)].Sprint(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	})
}

// Package textwidth measures terminal cell widths of strings.
//
// Widths are grapheme-cluster aware so prefix columns line up even when
// numbering labels contain wide or combining characters.
package textwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells text occupies.
//
// Tabs are not expanded; callers dealing with tab stops must expand first.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	total := 0
	for g.Next() {
		total += clusterWidth(g.Str())
	}
	return total
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

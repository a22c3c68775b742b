// Package narrative supplies the caption shown above each quarter group
// in the gallery. The static table here is a stand-in for a future
// content-generation service; the render layer only knows the interface.
package narrative

import "fmt"

// Generator produces descriptive text for a quarter group.
type Generator interface {
	Caption(quarter int) string
}

// Static is the fixed four-quarter caption table.
type Static struct{}

var captions = map[int]string{
	1: "First quarter: scripted openers and early tone-setters.",
	2: "Second quarter: counters off what the defense showed early.",
	3: "Third quarter: halftime adjustments put to work.",
	4: "Fourth quarter: situational football and closers.",
}

// Caption returns the caption for a quarter. Quarters outside 1-4 get a
// generic fallback rather than an error.
func (Static) Caption(quarter int) string {
	if c, ok := captions[quarter]; ok {
		return c
	}
	return fmt.Sprintf("Quarter %d", quarter)
}

// Package render lays parsed slides out as two-column cards for the web page
// and the terminal.
package render

import "startup_pitcher/generator"

// Columns deals slides into two columns: even positions left, odd right.
// Document order is kept inside each column.
func Columns(slides []generator.Slide) (left, right []generator.Slide) {
	for i, s := range slides {
		if i%2 == 0 {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}

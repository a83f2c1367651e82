// Package numerology builds the Lo Shu digit grid from a calendar date.
// It is independent of the ephemeris: only the digits of the date matter.
package numerology

import "time"

// loShuCell maps each digit 1-9 to its fixed (row, column) in the
// traditional Lo Shu square:
//
//	4 9 2
//	3 5 7
//	8 1 6
var loShuCell = map[int][2]int{
	4: {0, 0}, 9: {0, 1}, 2: {0, 2},
	3: {1, 0}, 5: {1, 1}, 7: {1, 2},
	8: {2, 0}, 1: {2, 1}, 6: {2, 2},
}

// Grid is a 3x3 table of digit occurrence counts.
type Grid [3][3]int

// Build counts the digits of the date rendered as YYYYMMDD and places
// the counts into the Lo Shu layout. Digit 0 has no cell and is ignored.
func Build(date time.Time) Grid {
	var g Grid
	n := date.Year()*10000 + int(date.Month())*100 + date.Day()
	for i := 0; i < 8; i++ {
		digit := n % 10
		n /= 10
		if digit == 0 {
			continue
		}
		cell := loShuCell[digit]
		g[cell[0]][cell[1]]++
	}
	return g
}

// Count returns the occurrence count for a digit 1-9, or 0 otherwise.
func (g Grid) Count(digit int) int {
	cell, ok := loShuCell[digit]
	if !ok {
		return 0
	}
	return g[cell[0]][cell[1]]
}

// Total returns the number of non-zero digits placed in the grid.
func (g Grid) Total() int {
	total := 0
	for _, row := range g {
		for _, c := range row {
			total += c
		}
	}
	return total
}

package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff. Old and New are 0-based line numbers in the
// old and new text, -1 where the line does not exist. Text keeps its
// trailing newline, if any.
type Line struct {
	Op   Op
	Old  int
	New  int
	Text string
}

// Lines computes the line diff from from to to.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	oi, ni := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for _, text := range splitLines(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffEqual:
				res = append(res, Line{Op: Equal, Old: oi, New: ni, Text: text})
				oi++
				ni++
			case diffpatch.DiffDelete:
				res = append(res, Line{Op: Delete, Old: oi, New: -1, Text: text})
				oi++
			case diffpatch.DiffInsert:
				res = append(res, Line{Op: Insert, Old: -1, New: ni, Text: text})
				ni++
			}
		}
	}
	return res
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if len(res) > 0 && res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

// Group splits lines into hunks: each change with up to context unchanged
// lines on either side. Changes at most 2*context lines apart share a hunk.
// It returns nil when no line changed.
func Group(lines []Line, context int) [][]Line {
	context = max(context, 0)
	var (
		res        [][]Line
		start, end = -1, -1
	)
	for i := range lines {
		if lines[i].Op == Equal {
			continue
		}
		lo, hi := max(i-context, 0), min(i+context+1, len(lines))
		if start >= 0 && lo > end {
			res = append(res, lines[start:end])
			start = -1
		}
		if start < 0 {
			start = lo
		}
		end = hi
	}
	if start >= 0 {
		res = append(res, lines[start:end])
	}
	return res
}

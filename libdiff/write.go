package libdiff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const separatorWidth = 80

// Colors styles the parts of a rendered diff. A nil func leaves text as is.
type Colors struct {
	Delete     func(string) string
	Insert     func(string) string
	DeleteEmph func(string) string
	InsertEmph func(string) string
}

// NewColors returns bold red and green styles with underlined emphasis.
// The styles are enabled whatever the color package detected about the
// terminal: deciding whether to colour is up to the caller.
func NewColors() *Colors {
	return &Colors{
		Delete:     sprint(color.FgRed, color.Bold),
		Insert:     sprint(color.FgGreen, color.Bold),
		DeleteEmph: sprint(color.FgRed, color.Bold, color.Underline),
		InsertEmph: sprint(color.FgGreen, color.Bold, color.Underline),
	}
}

func sprint(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

func (c *Colors) style(op Op, emph bool) func(string) string {
	var f func(string) string
	if c != nil {
		switch {
		case op == Delete && emph:
			f = c.DeleteEmph
		case op == Delete:
			f = c.Delete
		case op == Insert && emph:
			f = c.InsertEmph
		case op == Insert:
			f = c.Insert
		}
	}
	if f == nil {
		return plain
	}
	return f
}

func plain(s string) string { return s }

type writeOpts struct {
	context int
	colors  *Colors
}

type WriteOption func(*writeOpts)

// Context sets the number of unchanged lines shown around changes. The
// default is 3.
func Context(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

func WithColors(c *Colors) WriteOption {
	return func(o *writeOpts) { o.colors = c }
}

type segment struct {
	text string
	emph bool
}

// Write renders the diff from from to to on w. Nothing is written when the
// texts are equal.
func Write(w io.Writer, from, to string, opts ...WriteOption) error {
	wo := &writeOpts{context: 3}
	for _, opt := range opts {
		opt(wo)
	}
	bw := bufio.NewWriter(w)
	for gi, hunk := range Group(Lines(from, to), wo.context) {
		if gi > 0 {
			fmt.Fprintln(bw, strings.Repeat("-", separatorWidth))
		}
		for i := 0; i < len(hunk); {
			if hunk[i].Op != Delete {
				writeLine(bw, wo.colors, hunk[i], nil)
				i++
				continue
			}
			j := i
			for j < len(hunk) && hunk[j].Op == Delete {
				j++
			}
			k := j
			for k < len(hunk) && hunk[k].Op == Insert {
				k++
			}
			dels, ins := hunk[i:j], hunk[j:k]
			if len(dels) != len(ins) {
				for _, l := range hunk[i:k] {
					writeLine(bw, wo.colors, l, nil)
				}
				i = k
				continue
			}
			insSegs := make([][]segment, len(ins))
			for n := range dels {
				var delSegs []segment
				delSegs, insSegs[n] = inline(dels[n].Text, ins[n].Text)
				writeLine(bw, wo.colors, dels[n], delSegs)
			}
			for n := range ins {
				writeLine(bw, wo.colors, ins[n], insSegs[n])
			}
			i = k
		}
	}
	return bw.Flush()
}

// inline splits a changed pair of lines into the parts they share and the
// parts that differ.
func inline(from, to string) ([]segment, []segment) {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(strings.TrimSuffix(from, "\n"), strings.TrimSuffix(to, "\n"), false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var del, ins []segment
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			del = append(del, segment{text: diff.Text})
			ins = append(ins, segment{text: diff.Text})
		case diffpatch.DiffDelete:
			del = append(del, segment{text: diff.Text, emph: true})
		case diffpatch.DiffInsert:
			ins = append(ins, segment{text: diff.Text, emph: true})
		}
	}
	return del, ins
}

func writeLine(w io.Writer, c *Colors, l Line, segs []segment) {
	num := ""
	if l.New >= 0 {
		num = fmt.Sprint(l.New + 1)
	}
	text := strings.TrimSuffix(l.Text, "\n")
	if segs == nil {
		segs = []segment{{text: text}}
	}
	fmt.Fprintf(w, "%4s|%s", num, c.style(l.Op, false)(l.Op.String()))
	for _, seg := range segs {
		if seg.text == "" {
			continue
		}
		fmt.Fprint(w, c.style(l.Op, seg.emph)(seg.text))
	}
	fmt.Fprintln(w)
}

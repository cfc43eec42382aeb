// Package libdiff renders line diffs between two versions of a document.
//
// # Usage
//
//	// unified hunks with 3 lines of context, coloured
//	err := libdiff.Write(os.Stdout, before, after,
//		libdiff.Context(3), libdiff.WithColors(libdiff.NewColors()))
//
//	// or work with the lines directly
//	for _, hunk := range libdiff.Group(libdiff.Lines(before, after), 3) {
//		...
//	}
//
// Each rendered line is the line number in the new text (blank for deleted
// lines), a '|', the sign and the text. Hunks are separated by a row of
// dashes. When a run of deleted lines is followed by as many inserted lines,
// the changed parts within each pair are emphasised.
package libdiff

package hdn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hdn-nix/hdn/debug"
	"github.com/hdn-nix/hdn/edit"
	"github.com/hdn-nix/hdn/libdiff"
)

type Mode int

const (
	Add Mode = iota
	Remove
)

func (m Mode) String() string {
	switch m {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// UpdateNix returns content with packages added to or removed from the list
// bound to attr. Packages already present are not added again and packages
// not present are not removed, so when nothing is left to do content is
// returned as is.
//
// Adding to an attribute that is not bound creates it.
func UpdateNix(content, attr string, packages []string, mode Mode) (string, error) {
	existing, err := edit.ArrayValues(content, attr)
	if err != nil {
		if mode != Add || !errors.Is(err, edit.ErrNoAttr) {
			return "", fmt.Errorf("%w: %w", ErrReadNix, err)
		}
		existing = nil
	}
	var selected []string
	for _, p := range dedupe(packages) {
		if slices.Contains(existing, p) == (mode == Remove) {
			selected = append(selected, p)
		}
	}
	if debug.Update() {
		debug.Logf("%s %s: existing %s\n   |selected %s\n", mode, attr, existing, selected)
	}
	if len(selected) == 0 {
		return content, nil
	}
	var res string
	switch mode {
	case Add:
		res, err = edit.AddToArray(content, attr, selected)
	case Remove:
		res, err = edit.RemoveFromArray(content, attr, selected)
	default:
		return "", fmt.Errorf("%w: unknown mode %s", ErrWriteNix, mode)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteNix, err)
	}
	return res, nil
}

func dedupe(ps []string) []string {
	res := make([]string, 0, len(ps))
	for _, p := range ps {
		if !slices.Contains(res, p) {
			res = append(res, p)
		}
	}
	return res
}

// Result is the outcome of a successful [Update].
type Result int

const (
	SwitchSucceeded Result = iota
	SwitchFailedRolledBack
	NothingToAdd
	NothingToRemove
	DryRun
)

func (r Result) String() string {
	switch r {
	case SwitchSucceeded:
		return "Successfully updated home.nix and activated generation"
	case SwitchFailedRolledBack:
		return "Running home-manager switch errored; your home.nix has been rolled back"
	case NothingToAdd:
		return "home.nix already contains all the specified packages; home-manager switch was not run"
	case NothingToRemove:
		return "home.nix doesn't contain any of the specified packages, home-manager switch was not run"
	case DryRun:
		return "Dry run; home.nix was not written and home-manager switch was not run"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

type Options struct {
	File      string
	Attribute string
	Packages  []string
	Mode      Mode
	DryRun    bool

	Switch SwitchOptions

	// Diff receives the changes made to File before it is written.
	Diff        io.Writer
	DiffOptions []libdiff.WriteOption

	// OnSwitchError is called when the switch command could not be run.
	// A command exiting with a non-zero status reports its own errors.
	OnSwitchError func(error)
}

// Update edits o.File, shows the diff, writes the file and runs the switch
// command. When the switch fails the previous content of o.File is
// restored and SwitchFailedRolledBack is returned.
func Update(ctx context.Context, o *Options) (Result, error) {
	info, err := os.Stat(o.File)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	content, err := os.ReadFile(o.File)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	updated, err := UpdateNix(string(content), o.Attribute, o.Packages, o.Mode)
	if err != nil {
		return 0, fmt.Errorf("could not update %s in %s: %w", o.Attribute, o.File, err)
	}
	if updated == string(content) {
		if o.Mode == Remove {
			return NothingToRemove, nil
		}
		return NothingToAdd, nil
	}
	if o.Diff != nil {
		if err := libdiff.Write(o.Diff, string(content), updated, o.DiffOptions...); err != nil {
			return 0, err
		}
		fmt.Fprintln(o.Diff)
	}
	if o.DryRun {
		return DryRun, nil
	}
	perm := info.Mode().Perm()
	if err := os.WriteFile(o.File, []byte(updated), perm); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	if debug.Update() {
		debug.Logf("wrote %s\n", o.File)
	}
	err = Switch(ctx, &o.Switch)
	if err == nil {
		return SwitchSucceeded, nil
	}
	if !errors.Is(err, ErrSwitchUnsuccessful) && o.OnSwitchError != nil {
		o.OnSwitchError(err)
	}
	if werr := os.WriteFile(o.File, content, perm); werr != nil {
		return 0, fmt.Errorf("%w: %w", ErrRollback, werr)
	}
	if debug.Update() {
		debug.Logf("restored %s after %v\n", o.File, err)
	}
	return SwitchFailedRolledBack, nil
}

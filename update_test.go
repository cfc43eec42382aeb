package hdn

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hdn-nix/hdn/edit"
)

const homeNix = `{ config, pkgs, ... }:

{
  home.username = "me";

  home.packages = with pkgs; [
    htop
    ripgrep
  ];
}
`

func TestUpdateNix(t *testing.T) {
	unTests := []struct {
		name     string
		src      string
		packages []string
		mode     Mode
		want     []string
		same     bool
	}{
		{
			name:     "add",
			src:      homeNix,
			packages: []string{"jq", "fd"},
			mode:     Add,
			want:     []string{"htop", "ripgrep", "jq", "fd"},
		},
		{
			name:     "add skips present and repeated",
			src:      homeNix,
			packages: []string{"jq", "htop", "jq"},
			mode:     Add,
			want:     []string{"htop", "ripgrep", "jq"},
		},
		{
			name:     "add nothing new",
			src:      homeNix,
			packages: []string{"ripgrep", "htop"},
			mode:     Add,
			same:     true,
		},
		{
			name:     "add creates the attribute",
			src:      "{\n  home.username = \"me\";\n}\n",
			packages: []string{"pkgs.jq"},
			mode:     Add,
			want:     []string{"pkgs.jq"},
		},
		{
			name:     "remove",
			src:      homeNix,
			packages: []string{"htop", "htop", "fd"},
			mode:     Remove,
			want:     []string{"ripgrep"},
		},
		{
			name:     "remove nothing present",
			src:      homeNix,
			packages: []string{"fd"},
			mode:     Remove,
			same:     true,
		},
	}
	for _, ut := range unTests {
		t.Run(ut.name, func(t *testing.T) {
			got, err := UpdateNix(ut.src, "home.packages", ut.packages, ut.mode)
			if err != nil {
				t.Fatal(err)
			}
			if ut.same {
				if got != ut.src {
					t.Errorf("content changed:\n%s", got)
				}
				return
			}
			vals, err := edit.ArrayValues(got, "home.packages")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ut.want, vals); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateNixErrors(t *testing.T) {
	ets := []struct {
		src  string
		mode Mode
		errs []error
	}{
		{src: `{ home.username = "me"; }`, mode: Remove, errs: []error{ErrReadNix, edit.ErrNoAttr}},
		{src: `{ home.packages = "x"; }`, mode: Add, errs: []error{ErrReadNix, edit.ErrArray}},
		{src: `[ ]`, mode: Add, errs: []error{ErrReadNix, edit.ErrParse}},
	}
	for _, et := range ets {
		_, err := UpdateNix(et.src, "home.packages", []string{"x"}, et.mode)
		for _, want := range et.errs {
			if !errors.Is(err, want) {
				t.Errorf("%q: got %v want %v", et.src, err, want)
			}
		}
	}
}

func homeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "home.nix")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	path := homeFile(t, homeNix)
	diff := &bytes.Buffer{}
	res, err := Update(ctx, &Options{
		File:      path,
		Attribute: "home.packages",
		Packages:  []string{"jq"},
		Mode:      Add,
		Switch:    SwitchOptions{Command: "true"},
		Diff:      diff,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res != SwitchSucceeded {
		t.Errorf("got %s", res)
	}
	if !strings.Contains(diff.String(), "|+    jq\n") {
		t.Errorf("diff:\n%s", diff.String())
	}
	if got := readFile(t, path); !strings.Contains(got, "    ripgrep\n    jq\n  ];") {
		t.Errorf("file:\n%s", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode %v", info.Mode())
	}
}

func TestUpdateRollback(t *testing.T) {
	ctx := context.Background()
	path := homeFile(t, homeNix)
	res, err := Update(ctx, &Options{
		File:      path,
		Attribute: "home.packages",
		Packages:  []string{"htop"},
		Mode:      Remove,
		Switch:    SwitchOptions{Command: "false"},
		OnSwitchError: func(err error) {
			t.Errorf("unexpected report %v", err)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res != SwitchFailedRolledBack {
		t.Errorf("got %s", res)
	}
	if got := readFile(t, path); got != homeNix {
		t.Errorf("not restored:\n%s", got)
	}

	var reported error
	res, err = Update(ctx, &Options{
		File:      path,
		Attribute: "home.packages",
		Packages:  []string{"jq"},
		Mode:      Add,
		Switch:    SwitchOptions{Command: filepath.Join(t.TempDir(), "no-such-command")},
		OnSwitchError: func(err error) {
			reported = err
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res != SwitchFailedRolledBack || !errors.Is(reported, ErrSwitchRun) {
		t.Errorf("got %s, reported %v", res, reported)
	}
	if got := readFile(t, path); got != homeNix {
		t.Errorf("not restored:\n%s", got)
	}
}

func TestUpdateNoSwitch(t *testing.T) {
	ctx := context.Background()
	path := homeFile(t, homeNix)
	fail := SwitchOptions{Command: "false"}
	nsTests := []struct {
		packages []string
		mode     Mode
		dryRun   bool
		want     Result
	}{
		{packages: []string{"htop"}, mode: Add, want: NothingToAdd},
		{packages: []string{"fd"}, mode: Remove, want: NothingToRemove},
		{packages: []string{"fd"}, mode: Add, dryRun: true, want: DryRun},
		{packages: []string{"htop"}, mode: Remove, dryRun: true, want: DryRun},
	}
	for _, nt := range nsTests {
		diff := &bytes.Buffer{}
		res, err := Update(ctx, &Options{
			File:      path,
			Attribute: "home.packages",
			Packages:  nt.packages,
			Mode:      nt.mode,
			DryRun:    nt.dryRun,
			Switch:    fail,
			Diff:      diff,
		})
		if err != nil {
			t.Fatal(err)
		}
		if res != nt.want {
			t.Errorf("%s %v: got %s want %s", nt.mode, nt.packages, res, nt.want)
		}
		if nt.dryRun == (diff.Len() == 0) {
			t.Errorf("%s %v: diff %q", nt.mode, nt.packages, diff.String())
		}
		if got := readFile(t, path); got != homeNix {
			t.Errorf("file written:\n%s", got)
		}
	}
}

func TestUpdateErrors(t *testing.T) {
	ctx := context.Background()
	_, err := Update(ctx, &Options{
		File:      filepath.Join(t.TempDir(), "home.nix"),
		Attribute: "home.packages",
		Packages:  []string{"jq"},
	})
	if !errors.Is(err, ErrReadFile) {
		t.Errorf("got %v", err)
	}

	path := homeFile(t, `{ home.username = "me"; }`)
	_, err = Update(ctx, &Options{
		File:      path,
		Attribute: "home.packages",
		Packages:  []string{"jq"},
		Mode:      Remove,
	})
	if !errors.Is(err, ErrReadNix) || !errors.Is(err, edit.ErrNoAttr) {
		t.Errorf("got %v", err)
	}
}

func TestResultString(t *testing.T) {
	for _, r := range []Result{SwitchSucceeded, SwitchFailedRolledBack, NothingToAdd, NothingToRemove, DryRun} {
		if s := r.String(); s == "" || strings.HasPrefix(s, "Result(") {
			t.Errorf("%d: %q", int(r), s)
		}
	}
	if Result(42).String() != "Result(42)" {
		t.Error(Result(42).String())
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/hdn-nix/hdn"
	"github.com/hdn-nix/hdn/debug"
	"github.com/hdn-nix/hdn/parse"
)

func hdnMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	if debug.Gops() {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		cfg.Command.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: %s requires at least one package", cli.ErrUsage, cfg.mode)
	}
	c, err := cfg.settings()
	if err != nil {
		return fail(err)
	}
	file, err := homeNix(c)
	if err != nil {
		return fail(fmt.Errorf("could not find home.nix: %w", err))
	}
	dumpTree(file)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := hdn.Update(ctx, &hdn.Options{
		File:      file,
		Attribute: c.Attribute,
		Packages:  args,
		Mode:      cfg.mode,
		DryRun:    cfg.DryRun,
		Switch: hdn.SwitchOptions{
			Command:   c.Switch.Command,
			Args:      c.Switch.Args,
			ShowTrace: cfg.ShowTrace || c.Switch.ShowTrace,
			Stdout:    cc.Out,
			Stderr:    os.Stderr,
		},
		Diff:        cc.Out,
		DiffOptions: diffOpts(c, cc.Out),
		OnSwitchError: func(err error) {
			printError(err)
			fmt.Fprintln(os.Stderr)
		},
	})
	if err != nil {
		return fail(err)
	}
	if res == hdn.SwitchSucceeded {
		fmt.Fprintln(cc.Out)
	}
	fmt.Fprintln(cc.Out, res)
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.settings()
	if err != nil {
		return fail(err)
	}
	file, err := homeNix(c)
	if err != nil {
		return fail(fmt.Errorf("could not find home.nix: %w", err))
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", hdn.ErrReadFile, err))
	}
	dumpTree(file)
	pkgs, err := hdn.List(string(content), c.Attribute, cfg.Where)
	if err != nil {
		return fail(err)
	}
	for _, p := range pkgs {
		fmt.Fprintln(cc.Out, p.Text)
	}
	return nil
}

func dumpTree(file string) {
	if !debug.Tree() {
		return
	}
	content, err := os.ReadFile(file)
	if err != nil {
		debug.Logf("%s: %v\n", file, err)
		return
	}
	debug.Logf("%s:\n%s", file, parse.Parse(content))
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
}

func fail(err error) error {
	if errors.Is(err, cli.ErrUsage) {
		return err
	}
	printError(err)
	return cli.ExitCodeErr(1)
}

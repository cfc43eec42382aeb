package main

import (
	"github.com/scott-cotton/cli"

	"github.com/hdn-nix/hdn"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "hdn").
		WithSynopsis("hdn [opts] command [opts] [packages]").
		WithDescription("hdn adds and removes packages in home.nix, then runs home-manager switch.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hdnMain(cfg, cc, args)
		}).
		WithSubs(
			AddCommand(cfg),
			RemoveCommand(cfg),
			ListCommand(cfg))
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	return updateCommand(mainCfg, hdn.Add, "add",
		"Add packages to home.nix, then run home-manager switch")
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	return updateCommand(mainCfg, hdn.Remove, "remove",
		"Remove packages from home.nix, then run home-manager switch")
}

func updateCommand(mainCfg *MainConfig, mode hdn.Mode, name, desc string) *cli.Command {
	cfg := &UpdateConfig{MainConfig: mainCfg, mode: mode}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, name).
		WithAliases(name[:1]).
		WithSynopsis(name + " [-show-trace] [-n] packages").
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return update(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr]").
		WithDescription("list the packages in home.nix").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

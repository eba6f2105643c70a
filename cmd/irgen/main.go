package main

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/tebeka/atexit"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler"
)

var writer = compiler.NewDirWriter()

func main() {
	flags := []*cli.Flag{
		cli.NewFlag("config,c", "irgen.toml", "generator config"),
		cli.NewFlag("verbose,v", "", "log topics to print"),
	}

	genCmd := &cli.Command{
		Name:        "gen",
		Description: "generate format views and operator table",
		Action:      genAct,
		Flags:       flags,
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "parse and link tables without writing anything",
		Action:      checkAct,
		Flags:       flags,
	}

	dumpCmd := &cli.Command{
		Name:        "dump",
		Description: "print linked tables as json",
		Action:      dumpAct,
		Flags:       flags,
	}

	app := &cli.Command{
		Name:        "irgen",
		Description: "irgen generates typed instruction format accessors from tables",
		Commands: []*cli.Command{
			genCmd,
			checkCmd,
			dumpCmd,
		},
	}

	atexit.Register(writer.Cleanup)

	err := cli.Run(app, os.Args, os.Environ())
	if err != nil {
		atexit.Fatalf("irgen: %v", err)
	}

	atexit.Exit(0)
}

func setup(c *cli.Command) (context.Context, *compiler.Config, error) {
	if v := c.String("verbose"); v != "" {
		tlog.SetVerbosity(v)
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	cfg, err := compiler.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	return ctx, cfg, nil
}

func genAct(c *cli.Command) (err error) {
	ctx, cfg, err := setup(c)
	if err != nil {
		return err
	}

	err = compiler.Generate(ctx, cfg, writer)
	if err != nil {
		return errors.Wrap(err, "generate %v", cfg.Package)
	}

	return nil
}

func checkAct(c *cli.Command) (err error) {
	ctx, cfg, err := setup(c)
	if err != nil {
		return err
	}

	t, err := compiler.Load(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "check %v", cfg.Package)
	}

	fmt.Printf("%v: %d formats, %d carriers, %d operators\n", cfg.Package, len(t.Formats), len(t.Carriers), len(t.Operators))

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx, cfg, err := setup(c)
	if err != nil {
		return err
	}

	t, err := compiler.Load(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "load %v", cfg.Package)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal")
	}

	fmt.Printf("%s\n", data)

	return nil
}

// Command treewidth computes an exact tree decomposition of a graph given
// in the PACE ".gr" format and writes the result in the PACE ".td" format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/cleanandglue"
	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/lowerbound"
	"github.com/katalvlaran/treewidth/pace"
	"github.com/katalvlaran/treewidth/treedecomp"
	"github.com/katalvlaran/treewidth/upperbound"
)

var log = newLogger("INFO", "treewidth")

// newLogger builds a go-logging Logger at the given level, falling back to
// INFO on an unparseable level string.
func newLogger(level, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)
	logging.SetBackend(leveled)
	return logging.MustGetLogger(module)
}

func main() {
	app := &cli.App{
		Name:  "treewidth",
		Usage: "compute exact tree decompositions of graphs in PACE format",
		Commands: []*cli.Command{
			decomposeCommand(),
			widthCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func decomposeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decompose",
		Usage:     "read a .gr file and write its tree decomposition as .td",
		ArgsUsage: "<input.gr> <output.td>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("expected exactly two positional arguments: <input.gr> <output.td>", 1)
			}
			return runDecompose(c.Args().Get(0), c.Args().Get(1), c.String("config"))
		},
	}
}

func widthCommand() *cli.Command {
	return &cli.Command{
		Name:      "width",
		Usage:     "print only the exact treewidth of a .gr file",
		ArgsUsage: "<input.gr>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit("expected exactly one positional argument: <input.gr>", 1)
			}
			d, _, err := solveFile(c.Args().Get(0), config.Default())
			if err != nil {
				return err
			}
			fmt.Println(d.Width)
			return nil
		},
	}
}

func runDecompose(inputPath, outputPath, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	d, n, err := solveFile(inputPath, cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("treewidth: %w", err)
	}
	defer out.Close()

	if err := pace.WriteDecomposition(out, d, n); err != nil {
		return fmt.Errorf("treewidth: %w", err)
	}
	log.Infof("decomposition written to %s, width %d", outputPath, d.Width)
	return nil
}

func solveFile(inputPath string, cfg *config.Config) (*treedecomp.Decomposition, int, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("treewidth: %w", err)
	}
	defer f.Close()

	g, err := pace.ReadGraph(f)
	if err != nil {
		return nil, 0, fmt.Errorf("treewidth: %w", err)
	}

	bg, err := bitgraph.FromCoreGraph(g)
	if err != nil {
		return nil, 0, fmt.Errorf("treewidth: %w", err)
	}

	opts := []cleanandglue.Option{
		cleanandglue.WithTrialObserver(func(k int) { log.Infof("trying width %d", k) }),
	}
	if cfg.LowerBound > 0 {
		opts = append(opts, cleanandglue.WithLowerBound(cfg.LowerBound))
	}
	if cfg.NodeBudget > 0 {
		opts = append(opts, cleanandglue.WithNodeBudget(cfg.NodeBudget))
	}

	var fallback *treedecomp.Decomposition
	upperHint := cfg.UpperBound
	if cfg.UseHeuristics {
		lb := lowerbound.MinorMinWidth(bg)
		log.Infof("heuristic lower bound: %d", lb)
		opts = append(opts, cleanandglue.WithLowerBound(lb))

		if upperHint == 0 {
			d, ub := upperbound.MinFillIn(bg)
			log.Infof("heuristic upper bound: %d", ub)
			fallback, upperHint = d, ub
		}
	}
	if upperHint > 0 {
		opts = append(opts, cleanandglue.WithUpperBound(upperHint))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if cfg.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, cfg.Timeout)
		defer timeoutCancel()
	}

	d, err := cleanandglue.SolveGraph(ctx, g, opts...)
	switch {
	case err == nil:
		return d, bg.N(), nil
	case fallback != nil:
		log.Infof("exact search did not improve on the heuristic bound; returning it")
		return fallback, bg.N(), nil
	default:
		return nil, 0, fmt.Errorf("treewidth: %w", err)
	}
}

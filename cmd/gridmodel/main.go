package main

import (
	"fmt"
	"os"

	"github.com/CodeStranger-Fred/gridmodel/gridworld"
	"github.com/CodeStranger-Fred/gridmodel/internal/config"
	"github.com/CodeStranger-Fred/gridmodel/mdp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	variant  string
	mapFile  string
	permute  bool
	noColor  bool
	logLevel string
}

func main() {
	cfg := config.Load()
	if err := newRootCmd(cfg).Execute(); err != nil {
		log.WithError(err).Error("gridmodel failed")
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &options{
		variant:  cfg.Variant,
		noColor:  !cfg.Color,
		logLevel: cfg.LogLevel,
	}

	rootCmd := &cobra.Command{
		Use:           "gridmodel",
		Short:         "Build and inspect the transition model of a tile grid world.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.variant, "variant", opts.variant, "model variant: teleport or terminal")
	flags.StringVar(&opts.mapFile, "map", "", "map file with one row per line (defaults to the stock map)")
	flags.BoolVar(&opts.permute, "permute", false, "swap the blue and green tiles before printing (terminal variant)")
	flags.BoolVar(&opts.noColor, "no-color", opts.noColor, "disable coloured output")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "map",
			Short: "Print the tile map",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := opts.model()
				if err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout(), !opts.noColor).printGrid(m)
				return nil
			},
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print every (state, action) transition",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := opts.model()
				if err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout(), !opts.noColor).printTable(m)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Build the model and verify its probabilities",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := opts.model()
				if err != nil {
					return err
				}
				if err := mdp.CheckModel(m); err != nil {
					return err
				}
				dims := m.Dimensions()
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s model, %dx%d, %d states, %d actions\n",
					m.Variant(), dims.Rows, dims.Cols, dims.States, dims.Actions)
				return nil
			},
		},
	)
	return rootCmd
}

func (o *options) model() (*gridworld.Model, error) {
	variant, err := gridworld.ParseVariant(o.variant)
	if err != nil {
		return nil, err
	}
	grid, err := o.grid(variant)
	if err != nil {
		return nil, err
	}

	switch variant {
	case gridworld.VariantTeleport:
		if o.permute {
			return nil, fmt.Errorf("--permute needs the %s variant", gridworld.VariantTerminal)
		}
		return gridworld.NewTeleportModel(grid)
	default:
		m, err := gridworld.NewTerminalModel(grid)
		if err != nil {
			return nil, err
		}
		if o.permute {
			m.PermuteTwoTiles()
		}
		return &m.Model, nil
	}
}

func (o *options) grid(variant gridworld.Variant) (gridworld.Grid, error) {
	if o.mapFile == "" {
		if variant == gridworld.VariantTeleport {
			return gridworld.TeleportGrid(), nil
		}
		return gridworld.TerminalGrid(), nil
	}
	f, err := os.Open(o.mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	log.Debugf("reading map from %s", o.mapFile)
	return gridworld.ReadGrid(f)
}

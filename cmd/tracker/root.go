package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learning-tracker/internal/app"
	"github.com/heartmarshall/learning-tracker/internal/config"
	"github.com/heartmarshall/learning-tracker/internal/domain"
	"github.com/heartmarshall/learning-tracker/internal/tracker"
	"github.com/heartmarshall/learning-tracker/pkg/ctxutil"
)

// skipAppAnnotation marks commands that run without opening storage.
const skipAppAnnotation = "tracker/skip-app"

// cli holds state shared by every command of one invocation.
type cli struct {
	configPath string
	app        *app.App
}

func (c *cli) store() *tracker.Store { return c.app.Store }

// today returns the current logical day in the configured timezone.
func (c *cli) today() string {
	return domain.FormatDay(time.Now(), c.app.Config.Tracker.Location)
}

// execute runs one invocation and always releases storage, even when the
// command fails.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, c.close())
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Track learning items, daily activity and your streak",
		Long: `tracker keeps a local log of what you are learning.

Learning items have a category (DSA, Web, CS, Other), a status
(Not started, In progress, Completed) and a completion percentage.
Activities are dated free-text entries, optionally linked to an item.
Logging on consecutive days builds a streak.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newItemCmd(c),
		newActivityCmd(c),
		newStreakCmd(c),
		newDashboardCmd(c),
		newExportCmd(c),
		newResetCmd(c),
		newVersionCmd(),
	)

	return root
}

// open loads configuration, builds the logger and opens the store.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipAppAnnotation] == "true" {
		return nil
	}

	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFrom(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	log := app.NewLogger(cmd.ErrOrStderr(), cfg.Log)

	ctx := ctxutil.NewInvocation(cmd.Context())
	cmd.SetContext(ctx)

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open tracker: %w", err)
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tracker", app.BuildVersion())
		},
	}
}

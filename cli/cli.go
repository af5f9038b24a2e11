package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"weather/manager"
	"weather/settings"
)

type Weather interface {
	Get(ctx context.Context, kind manager.Kind, location, at string) (manager.Report, error)
}

type Options struct {
	// ConfigPath is where configure saves and get reads the provider.
	ConfigPath string
	// Level is raised to debug by --verbose. May be nil.
	Level *slog.LevelVar
	// Weather is called only by get, so configure works without API keys.
	Weather func() (Weather, error)
}

func New(opts Options) (*cobra.Command, error) {
	if opts.Weather == nil {
		return nil, fmt.Errorf("cli: weather constructor is required")
	}

	var verbose bool

	cmd := &cobra.Command{
		Use:           "weather",
		Short:         "CLI application for getting information of weather",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && opts.Level != nil {
				opts.Level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.ErrNoCommand
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log upstream requests")

	cmd.AddCommand(configureCommand(opts), getCommand(opts))

	return cmd, nil
}

func configureCommand(opts Options) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the data provider: openweather (default), weatherapi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := manager.ParseKind(provider)
			if err != nil {
				return err
			}

			if err = settings.Save(opts.ConfigPath, kind); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Provider %s successfully saved to %s\n", kind, opts.ConfigPath)

			return nil
		},
	}
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "openweather or weatherapi")
	_ = cmd.MarkFlagRequired("provider")

	return cmd
}

func getCommand(opts Options) *cobra.Command {
	var location, at string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the weather for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := settings.Load(opts.ConfigPath)
			if err != nil {
				return err
			}

			weather, err := opts.Weather()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Using provider: %s\n", kind)

			report, err := weather.Get(cmd.Context(), kind, location, at)
			if err != nil {
				return err
			}

			fmt.Fprint(out, report.String())

			return nil
		},
	}
	cmd.Flags().StringVarP(&location, "location", "l", "", "location to get weather for")
	cmd.Flags().StringVarP(&at, "time", "t", "", "time (default: now), e.g. 2021-01-01T12:00:00Z")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

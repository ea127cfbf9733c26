package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/supby/gatecfg/internal/configuration"
	"github.com/supby/gatecfg/internal/firmware"
	"github.com/supby/gatecfg/internal/logger"
	"github.com/supby/gatecfg/internal/mqtt"
)

type rootOptions struct {
	configFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "gatecfg",
		Short:        "Manage the configuration compiled into the parking gate controller",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "./configuration.yaml", "path to config file name, empty for compiled defaults")

	cmd.AddCommand(
		newShowCommand(opts),
		newCheckCommand(opts),
		newRenderCommand(opts),
		newImportCommand(),
	)

	return cmd
}

// load reads and validates the configuration, the returned logger honours
// its logLevel.
func (o *rootOptions) load() (configuration.Configuration, logger.Logger, error) {
	configService, err := configuration.Init(o.configFile)
	if err != nil {
		return configuration.Configuration{}, nil, err
	}

	cfg := configService.GetConfiguration()
	if err := configuration.Validate(cfg); err != nil {
		return configuration.Configuration{}, nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return configuration.Configuration{}, nil, err
	}

	return cfg, logger.New(os.Stderr, "[gatecfg]", level), nil
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			if !reveal {
				cfg = cfg.Redacted()
			}

			out, err := configuration.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print secrets instead of masking them")

	return cmd
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var (
		deployment bool
		probe      bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			if deployment {
				if err := configuration.ValidateForDeployment(cfg); err != nil {
					return fmt.Errorf("not ready for deployment:\n%w", err)
				}
			}

			if probe {
				mqtt.RouteLibraryLogs(log)

				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()

				if err := mqtt.Probe(ctx, cfg.Mqtt, log); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
			return nil
		},
	}
	cmd.Flags().BoolVar(&deployment, "deployment", false, "also reject placeholder network credentials")
	cmd.Flags().BoolVar(&probe, "probe", false, "connect to the broker to check it is reachable")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "broker probe timeout")

	return cmd
}

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the firmware config.h header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			buf := bytes.Buffer{}
			if err := firmware.Render(&buf, cfg); err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return err
			}
			log.Info("Header written to %v", output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "header file to write, stdout when empty")

	return cmd
}

func newImportCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a firmware config.h into a YAML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()

			cfg, err := firmware.Parse(f)
			if err != nil {
				return fmt.Errorf("%v: %w", input, err)
			}
			if err := configuration.Validate(cfg); err != nil {
				return fmt.Errorf("invalid configuration in %v:\n%w", input, err)
			}

			out, err := configuration.Marshal(cfg)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			return os.WriteFile(output, out, 0600)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "config.h to read")
	cmd.Flags().StringVarP(&output, "output", "o", "", "YAML file to write, stdout when empty")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

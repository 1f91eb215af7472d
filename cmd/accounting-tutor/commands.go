package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/accounting-tutor/internal/auth"
	"github.com/iwvelando/accounting-tutor/internal/config"
	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/internal/navigation"
	"github.com/iwvelando/accounting-tutor/internal/server"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/metrics"
	"github.com/iwvelando/accounting-tutor/pkg/output"
	"github.com/iwvelando/accounting-tutor/pkg/validation"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration and built the logger.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "accounting-tutor",
		Short:         "Interactive accounting reference and practice calculators",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", "output format override: pretty, csv, json")

	root.AddCommand(a.serveCmd(), a.modulesCmd(), a.calcCmd())
	return root
}

func (a *app) load() error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.conf = conf
	a.logger = logger
	return nil
}

// format resolves the output format. The flag wins over the configuration.
func (a *app) format() (string, error) {
	outputFormat := a.conf.Output.Format
	if a.outputFormat != "" {
		outputFormat = a.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, warning := range a.conf.ValidateConfiguration() {
				a.logger.Warn("Configuration warning: "+warning,
					zap.String("op", "main.serve"),
				)
			}

			srvConfig, err := server.NewConfig(a.conf.Server, version)
			if err != nil {
				return fmt.Errorf("invalid server configuration: %w", err)
			}

			handler := server.NewHandler(server.Options{
				Logger:      a.logger,
				Catalog:     topic.Default(),
				Gateway:     a.gateway(),
				Metrics:     metrics.NewManager(),
				MaxBodySize: srvConfig.MaxBodySize,
				Version:     srvConfig.Version,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, a.logger, server.New(srvConfig, handler))
		},
	}
}

// gateway returns nil when no API key is configured, which disables the
// auth endpoints.
func (a *app) gateway() *auth.Gateway {
	if strings.TrimSpace(a.conf.Auth.APIKey) == "" {
		return nil
	}
	provider := auth.NewIdentityToolkit(auth.IdentityToolkitConfig{
		APIKey:      a.conf.Auth.APIKey,
		Endpoint:    a.conf.Auth.Endpoint,
		ContinueURL: a.conf.Auth.ContinueURL,
		Timeout:     a.conf.AuthTimeout(),
	})
	return auth.NewGateway(provider, a.logger)
}

func (a *app) modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the topic modules and their calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := a.format()
			if err != nil {
				return err
			}
			return output.ModulesFormat(cmd.OutOrStdout(), outputFormat, topic.Default().Modules())
		},
	}
}

func (a *app) calcCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "calc <module> <mode> [name=value ...]",
		Short: "Run one calculator and print its results",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := a.format()
			if err != nil {
				return err
			}

			selector := navigation.NewSelector(topic.Default())
			state, err := selector.Resolve(args[0], args[1], string(navigation.ViewSimulator))
			if err != nil {
				return err
			}
			m, sub, err := selector.Module(state)
			if err != nil {
				return err
			}

			in := formula.Inputs{}
			if inputFile != "" {
				if in, err = readInputFile(inputFile); err != nil {
					return err
				}
			}
			if err := parseAssignments(args[2:], in); err != nil {
				return err
			}

			report := output.Evaluate(m, sub, in)
			a.logger.Debug("calculator evaluated",
				zap.String("op", "main.calc"),
				zap.String("module", m.ID),
				zap.String("mode", sub.ID),
				zap.Int("non_finite", report.NonFinite()),
			)
			return output.Render(cmd.OutOrStdout(), outputFormat, report)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML file of name: value inputs")
	return cmd
}

// parseAssignments adds name=value arguments to in, overriding earlier values.
func parseAssignments(args []string, in formula.Inputs) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid input %q: expected name=value", arg)
		}
		in[strings.TrimSpace(name)] = value
	}
	return nil
}

// readInputFile loads a flat YAML mapping of input names to values. Scalars
// are kept in their written form so they parse exactly as typed text would.
func readInputFile(path string) (formula.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml %s: %w", path, err)
	}

	in := formula.Inputs{}
	if len(doc.Content) == 0 {
		return in, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml %s: expected a mapping of input names to values", path)
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse yaml %s: input %q must be a scalar (line %d)", path, key.Value, value.Line)
		}
		if value.Tag == "!!null" {
			in[key.Value] = ""
			continue
		}
		in[key.Value] = value.Value
	}
	return in, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"twbindgen/internal/codegen"
	"twbindgen/internal/config"
	"twbindgen/internal/generation"
	"twbindgen/internal/grammar"
	"twbindgen/internal/logging"
)

var (
	configPath string
	verbose    bool

	input           string
	prefix          string
	language        string
	output          string
	format          string
	workers         int
	skipUnsupported bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "twbindgen",
	Short: "Builds binding method descriptors from native TW declarations",
	Long: `twbindgen reads a manifest of exported native declarations and resolves,
for every parameter and return value, the binding type, its nullability and the
expressions needed to cross the C ABI. The resulting method descriptors are
written as documents for the template renderer.`,
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble method descriptors for every declaration in a manifest",
	Example: `  twbindgen generate --input TWString.yaml --language swift
  twbindgen generate --config twbindgen.yaml --output out/methods.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported binding languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, language := range codegen.Languages() {
			fmt.Fprintln(cmd.OutOrStdout(), language)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	generateCmd.Flags().StringVarP(&input, "input", "i", "", "Path to the declaration manifest")
	generateCmd.Flags().StringVar(&prefix, "prefix", "", "Common symbol prefix. Default: the manifest prefix")
	generateCmd.Flags().StringVarP(&language, "language", "l", "", "Binding language. Default: swift")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Output file, '-' for stdout. Default: -")
	generateCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml. Default: json")
	generateCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent assemblies, 0 for GOMAXPROCS")
	generateCmd.Flags().BoolVar(&skipUnsupported, "skip-unsupported", false, "Skip failing declarations instead of aborting")

	rootCmd.AddCommand(generateCmd, languagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = input
	}
	if flags.Changed("prefix") {
		cfg.Prefix = prefix
	}
	if flags.Changed("language") {
		cfg.Language = language
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("skip-unsupported") {
		cfg.SkipUnsupported = skipUnsupported
	}

	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reader, err := grammar.NewReader(cfg.Input)
	if err != nil {
		return err
	}

	commonPrefix := grammar.Keyword(cfg.Prefix)
	if commonPrefix == "" {
		commonPrefix = reader.Prefix()
	}
	if commonPrefix == "" {
		return fmt.Errorf("no prefix given and manifest '%s' declares none", cfg.Input)
	}

	resolver, err := codegen.ResolverFor(cfg.Language)
	if err != nil {
		return err
	}

	generator := generation.NewGenerator(resolver, commonPrefix,
		generation.WithLogger(logger),
		generation.WithWorkers(cfg.Workers),
		generation.WithPolicy(cfg.Policy()))
	for _, function := range reader.Functions() {
		generator.RegisterFunction(function)
	}

	result, err := generator.Generate(cmd.Context())
	if err != nil {
		return err
	}

	outputFormat := generation.Format(cfg.Format)
	if cfg.Output == "-" {
		return generation.WriteDocuments(cmd.OutOrStdout(), result.Documents, outputFormat)
	}

	logger.Info("writing documents", zap.String("path", cfg.Output), zap.Int("count", len(result.Documents)))
	return generation.Save(cfg.Output, result.Documents, outputFormat)
}

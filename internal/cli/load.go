package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fishub/lookupload/internal/config"
	"github.com/fishub/lookupload/internal/logging"
	"github.com/fishub/lookupload/internal/lookup"
	"github.com/fishub/lookupload/internal/services"
	"github.com/fishub/lookupload/internal/store"
	"github.com/fishub/lookupload/pkg/lookupload"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Write the lookup lists to Firestore",
	Long: `Load replaces every lookup document in Firestore with the built-in lists.

The load command:
1. Reads the service-account key and creates the Firestore client
   (a missing or invalid key aborts before anything is written)
2. Writes lookup_tables/<category> = {"values": [...]} for each category
3. Prints a confirmation once every document is written

Credentials (first match wins):
  1. --credentials flag
  2. credentials in lookupload.yaml
  3. $GOOGLE_APPLICATION_CREDENTIALS
  4. ./serviceAccountKey.json

The project defaults to the key's project_id. Set $FIRESTORE_EMULATOR_HOST
to target the local emulator; no key is needed then.

Examples:
  # Upload everything with the key in the current directory
  lookupload load

  # Upload two lists with an explicit key
  lookupload load --credentials ~/keys/fishub.json \
    --category rodTypes --category reelTypes

  # Show what would be written without connecting
  lookupload load --dry-run`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

type loadFlagValues struct {
	credentials string
	project     string
	collection  string
	configPath  string
	categories  []string
	concurrency int
	dryRun      bool
	timeout     time.Duration
}

func defaultLoadFlags() loadFlagValues {
	return loadFlagValues{
		collection:  lookupload.DefaultCollection,
		concurrency: lookupload.DefaultConcurrency,
		timeout:     lookupload.DefaultTimeout,
	}
}

var loadFlags = defaultLoadFlags()

// newConnectorFactory is replaced in tests.
var newConnectorFactory = store.NewConnector

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadFlags.credentials, "credentials", "",
		"Service-account key file\n"+
			"Precedence: --credentials > lookupload.yaml > $GOOGLE_APPLICATION_CREDENTIALS > ./serviceAccountKey.json")
	loadCmd.Flags().StringVar(&loadFlags.project, "project", "",
		"Google Cloud project (default: $GOOGLE_CLOUD_PROJECT, then the key's project_id)")
	loadCmd.Flags().StringVar(&loadFlags.collection, "collection", loadFlags.collection,
		"Collection that receives one document per category")
	loadCmd.Flags().StringSliceVar(&loadFlags.categories, "category", nil,
		"Only write these categories (can be specified multiple times)\n"+
			"Run 'lookupload list' for the available names")
	loadCmd.Flags().IntVar(&loadFlags.concurrency, "concurrency", loadFlags.concurrency,
		fmt.Sprintf("Number of writes in flight (1-%d). 1 writes in table order and stops at the first failure", lookupload.MaxConcurrency))
	loadCmd.Flags().BoolVar(&loadFlags.dryRun, "dry-run", false,
		"Print the documents that would be written without connecting")
	loadCmd.Flags().DurationVar(&loadFlags.timeout, "timeout", loadFlags.timeout,
		"Catastrophic failure protection timeout for the whole run (0 disables)\n"+
			"Examples: 30s, 5m")
	loadCmd.Flags().StringVar(&loadFlags.configPath, "config", "",
		"Config file (default: ./lookupload.yaml if present)")
}

// loadProjectConfig reads the explicit config file, or lookupload.yaml in
// the working directory when it exists.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s: %w", path, lookupload.ErrInvalidConfig)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	return cfg, err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// buildLoadConfig builds a LoadConfig from CLI flags, lookupload.yaml and
// the environment, in that order of precedence.
func buildLoadConfig(cmd *cobra.Command, verbose bool) (lookupload.LoadConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(loadFlags.configPath)
	if err != nil {
		return lookupload.LoadConfig{}, err
	}

	cfg := lookupload.LoadConfig{
		CredentialsPath: firstNonEmpty(
			loadFlags.credentials,
			projectCfg.Credentials,
			os.Getenv(lookupload.EnvCredentials),
			lookupload.DefaultCredentialsFile,
		),
		ProjectID:    firstNonEmpty(loadFlags.project, projectCfg.ProjectID, os.Getenv(lookupload.EnvProject)),
		EmulatorHost: os.Getenv(lookupload.EnvEmulatorHost),
		Collection:   loadFlags.collection,
		Categories:   loadFlags.categories,
		Concurrency:  loadFlags.concurrency,
		DryRun:       loadFlags.dryRun,
		Timeout:      loadFlags.timeout,
		Verbose:      verbose,
	}

	if !cmd.Flags().Changed("collection") && projectCfg.Collection != "" {
		cfg.Collection = projectCfg.Collection
	}
	if len(cfg.Categories) == 0 && len(projectCfg.Categories) > 0 {
		cfg.Categories = projectCfg.Categories
	}
	if !cmd.Flags().Changed("concurrency") && projectCfg.Concurrency != 0 {
		cfg.Concurrency = projectCfg.Concurrency
	}
	if !cmd.Flags().Changed("timeout") && projectCfg.Timeout != "" {
		timeout, err := projectCfg.TimeoutDuration()
		if err != nil {
			return lookupload.LoadConfig{}, err
		}
		cfg.Timeout = timeout
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Configuration resolved:\n")
		fmt.Fprintf(os.Stderr, "  Credentials: %s\n", cfg.CredentialsPath)
		fmt.Fprintf(os.Stderr, "  Project: %s\n", firstNonEmpty(cfg.ProjectID, "(from key file)"))
		fmt.Fprintf(os.Stderr, "  Emulator: %s\n", firstNonEmpty(cfg.EmulatorHost, "(none)"))
		fmt.Fprintf(os.Stderr, "  Collection: %s\n", cfg.Collection)
		fmt.Fprintf(os.Stderr, "  Concurrency: %d\n", cfg.Concurrency)
		fmt.Fprintf(os.Stderr, "  Timeout: %s\n", cfg.Timeout)
	}

	return cfg, nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildLoadConfig(cmd, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	loader := services.NewLoaderService(newConnectorFactory(logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, cfg.Timeout)
		defer cancelTimeout()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling upload...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := loader.Load(ctx, cfg)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintf(out, "Dry run: %d documents would be written to %s\n", len(result.Written), result.Collection)
		for _, name := range result.Written {
			c, _ := lookup.Get(name)
			fmt.Fprintf(out, "  %s/%s (%d values)\n", result.Collection, name, len(c.Values))
		}
		return nil
	}

	logger.Verbose("Wrote %d documents in %s", len(result.Written), result.Duration.Round(time.Millisecond))
	fmt.Fprintln(out, lookupload.CompletionMessage)
	return nil
}

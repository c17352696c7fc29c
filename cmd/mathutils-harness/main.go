// Command mathutils-harness runs the MathUtils plan and prints the results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	"github.com/mathutils-demo/mathutils/pkg/harness"
	"github.com/mathutils-demo/mathutils/pkg/mathsuite"
)

var (
	includeTags = flag.String("include-tags", "", "comma separated tags to run (overrides "+harness.EnvIncludeTags+")")
	excludeTags = flag.String("exclude-tags", "", "comma separated tags to skip (overrides "+harness.EnvExcludeTags+")")
	envFile     = flag.String("env-file", "", "dotenv file to load; .env is loaded when present")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := loadEnv(*envFile); err != nil {
		glog.Fatalf("Failed to load environment: %v", err)
	}

	cfg, err := harness.LoadConfig(os.LookupEnv)
	if err != nil {
		glog.Fatalf("Invalid configuration: %v", err)
	}
	if *includeTags != "" {
		cfg.IncludeTags = splitFlag(*includeTags)
	}
	if *excludeTags != "" {
		cfg.ExcludeTags = splitFlag(*excludeTags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		glog.Errorf("Failed to write report: %v", err)
		failed = true
	}
	if failed {
		glog.Flush()
		os.Exit(1)
	}
}

// loadEnv loads path, or ./.env when path is empty and the file exists.
func loadEnv(path string) error {
	if path != "" {
		glog.V(1).Infof("Loading environment from %s", path)
		return godotenv.Load(path)
	}

	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		glog.V(2).Info("No .env file found")
		return nil
	}
	return err
}

// run executes the plan under cfg and writes the report to w.
func run(ctx context.Context, cfg harness.Config, w io.Writer) (failed bool, err error) {
	runner := harness.NewRunner(harness.WithConfig(cfg))
	report := runner.Run(ctx, mathsuite.New())

	if err := report.WriteText(w); err != nil {
		return true, fmt.Errorf("writing report: %w", err)
	}
	return report.Failed(), nil
}

func splitFlag(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

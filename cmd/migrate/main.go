// Command migrate manages the database schema.
//
//	migrate up
//	migrate down [n]
//	migrate version
//	migrate force <version>
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/AnyaAven/jobly/internal/database/migrations"
	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	platformconfig "github.com/AnyaAven/jobly/internal/platform/config"
)

const usage = "usage: migrate up | down [n] | version | force <version>"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	client, err := postgres.NewClient(context.Background(), &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}

	runner, err := migrations.New(client.DB().DB)
	if err != nil {
		client.Close()
		log.Fatalf("Failed to open migrations: %v", err)
	}
	defer runner.Close()

	if err := run(runner, os.Args[1:]); err != nil {
		runner.Close()
		log.Fatalf("%v", err)
	}
}

func run(runner *migrations.Runner, args []string) error {
	switch args[0] {
	case "up":
		return runner.Up()
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("down: invalid step count %q", args[1])
			}
			steps = n
		}
		return runner.Down(steps)
	case "version":
		v, dirty, err := runner.Version()
		if err != nil {
			return err
		}
		log.Info("version %d (dirty: %t)", v, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force: version required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[1])
		}
		return runner.Force(v)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

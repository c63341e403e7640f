// Command rxdex-load seeds a catalog snapshot into the Redis key the rxdex
// server reads at startup. The snapshot is validated as a medication list
// before it is written.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/medcloud/rxdex/internal/db/redis"
	"github.com/medcloud/rxdex/internal/domain"
)

func main() {
	var (
		file  = flag.String("file", "data/medications.json", "catalog snapshot JSON file")
		key   = flag.String("key", "rxdex:catalog", "redis key to write")
		addrs = flag.String("addrs", "localhost:6379", "comma-separated redis addresses")
	)
	flag.Parse()

	if err := run(*file, *key, strings.Split(*addrs, ",")); err != nil {
		fmt.Fprintln(os.Stderr, "rxdex-load:", err)
		os.Exit(1)
	}
}

func run(file, key string, addrs []string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	var records []domain.Medication
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no records", file)
	}

	store, err := redis.NewStore(redis.Config{
		Addrs:    addrs,
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("create redis store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		return err
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	fmt.Printf("seeded %d records to %s\n", len(records), key)
	return nil
}

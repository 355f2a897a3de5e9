// seed-demo writes the demo tenants (Burger King Tz, Zanzibar Coffee House and the super admin)
// into the configured storage. Collections that already hold data are kept unless --force is set.
//
// Usage:
//
//	STORAGE_BACKEND=redis REDIS_ADDRESS=localhost:6379 go run ./cmd/seed-demo
//	go run ./cmd/seed-demo --force --confirm=SEED
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/store"
)

func main() {
	force := flag.Bool("force", false, "Wipe storage before seeding (destructive)")
	confirm := flag.String("confirm", "", "Type SEED to proceed when force=true")
	flag.Parse()

	if *force && strings.TrimSpace(*confirm) != "SEED" {
		fmt.Fprintln(os.Stderr, "set --confirm=SEED to proceed with --force")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := config.Load()
	logger := config.GetLogger()

	adapter, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s storage: %v\n", cfg.StorageBackend, err)
		os.Exit(1)
	}
	defer adapter.Close()

	st := store.New(adapter)
	if *force {
		st.Clear(ctx)
	}
	st.Load(ctx, seed.Demo(time.Now()))
	st.Persist(ctx)

	fmt.Printf("seeded %s storage (prefix %q): %d organizations, %d users, %d locations, %d products\n",
		cfg.StorageBackend, adapter.Prefix(),
		st.Organizations.Len(), st.Users.Len(), st.Locations.Len(), st.Products.Len())
	fmt.Printf("log in as %s, %s or %s\n", seed.SuperAdminEmail, seed.BurgerAdminEmail, seed.CoffeeAdminEmail)
}

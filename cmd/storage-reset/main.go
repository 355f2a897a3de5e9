// storage-reset removes every key under the configured prefix.
//
// Usage:
//
//	go run ./cmd/storage-reset                               # counts only
//	go run ./cmd/storage-reset --dry-run=false --confirm=RESET
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/store"
)

func main() {
	dryRun := flag.Bool("dry-run", true, "Show counts only (no writes)")
	confirm := flag.String("confirm", "", "Type RESET to proceed when dry-run=false")
	flag.Parse()

	if !*dryRun && strings.TrimSpace(*confirm) != "RESET" {
		fmt.Fprintln(os.Stderr, "set --confirm=RESET to proceed")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := config.Load()
	adapter, err := storage.Open(ctx, cfg, config.GetLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s storage: %v\n", cfg.StorageBackend, err)
		os.Exit(1)
	}
	defer adapter.Close()

	st := store.New(adapter)
	st.Load(ctx, store.Seed{})
	printCounts(st)

	if *dryRun {
		return
	}
	st.Clear(ctx)
	fmt.Printf("cleared %s storage (prefix %q)\n", cfg.StorageBackend, adapter.Prefix())
}

func printCounts(st *store.Store) {
	counts := []struct {
		name  string
		count int
	}{
		{"organizations", st.Organizations.Len()},
		{"users", st.Users.Len()},
		{"locations", st.Locations.Len()},
		{"products", st.Products.Len()},
		{"template products", st.TemplateProducts.Len()},
		{"customers", st.Customers.Len()},
		{"transactions", st.Transactions.Len()},
		{"inventory", st.Inventory.Len()},
		{"tables", st.Tables.Len()},
		{"employees", st.Employees.Len()},
		{"shifts", st.Shifts.Len()},
	}
	for _, c := range counts {
		fmt.Printf("%-18s %d\n", c.name, c.count)
	}
}

// Package cli provides the Cobra-based CLI for copsis.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"copsis/catalog"
	"copsis/domain"
	"copsis/inventory"
	"copsis/pos"
	"copsis/store"
)

var (
	rootCmd = &cobra.Command{
		Use:           "copsis",
		Short:         "Pharmacy point of sale and inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests and the shell keep what is already set up
			if inventoryManager != nil && session != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(viper.GetString("log-level"))}),
			))

			if inventoryManager == nil {
				m, err := openInventory(cmd.Context())
				if err != nil {
					return err
				}
				inventoryManager = m
			}
			if session == nil {
				s, err := openSession()
				if err != nil {
					return err
				}
				session = s
			}
			return nil
		},
	}

	inventoryManager *inventory.Manager
	session          *pos.Session
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func openInventory(ctx context.Context) (*inventory.Manager, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	kind := viper.GetString("store")
	repo, err := store.NewRepository(
		kind,
		storePath(kind, viper.GetString("store-file")),
		viper.GetString("inventory-key"),
	)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	m, err := inventory.Open(ctx, repo, inventory.Seed())
	if err != nil {
		return nil, err
	}
	slog.Debug("inventory opened", "store", viper.GetString("store"), "duration_ms", time.Since(start).Milliseconds())
	return m, nil
}

func openSession() (*pos.Session, error) {
	cat := catalog.Sample()
	if path := viper.GetString("catalog"); path != "" {
		c, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cat = c
	}

	now := time.Now
	if today := viper.GetString("today"); today != "" {
		d, err := domain.ParseDate(today)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
		now = func() time.Time {
			t := time.Now().UTC()
			return d.Time().Add(t.Sub(t.Truncate(24 * time.Hour)))
		}
	}
	slog.Debug("catalog loaded", "products", cat.Len())
	return pos.NewSession(cat, pos.WithSessionClock(now)), nil
}

// runShellLine executes one shell command, then puts that command's own flags
// back to their defaults so they do not leak into the next line.
func runShellLine(args []string) error {
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if c, _, ferr := rootCmd.Find(args); ferr == nil {
		resetLocalFlags(c)
	}
	return err
}

func resetLocalFlags(c *cobra.Command) {
	c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// storePath returns path, or the default location for the backend kind.
func storePath(kind, path string) string {
	if path != "" {
		return path
	}
	switch kind {
	case "file":
		return "data/copsis.json"
	case "sqlite":
		return "data/copsis.db"
	}
	return ""
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode; the sale in progress survives between commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("copsis> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				if err := runShellLine(strings.Fields(line)); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "memory", "inventory backend: memory|file|sqlite")
	rootCmd.PersistentFlags().String("store-file", "", "store path (default data/copsis.json for file, data/copsis.db for sqlite)")
	rootCmd.PersistentFlags().String("inventory-key", store.DefaultKey, "key the inventory snapshot is stored under")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (.json, .yaml); empty uses the sample catalog")
	rootCmd.PersistentFlags().String("today", "", "override today's date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	for _, name := range []string{"store", "store-file", "inventory-key", "catalog", "today", "config", "log-level"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("COPSIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newInventoryCmd())
	addSaleCommands(rootCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emap-tools/aucap/app"
	"github.com/emap-tools/aucap/infra/logger"
	"github.com/emap-tools/aucap/infra/opennem"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Registry cache related commands",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the registry cache file state",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the registry cache file",
	RunE:  runCacheClear,
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the registry and rewrite the cache file",
	RunE:  runCacheRefresh,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheRefreshCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	cache := opennem.NewCache(cfg.Cache, logger.NopLogger{})
	st, err := cache.Inspect()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path: %s\n", st.Path)
	if !st.Exists {
		fmt.Fprintln(out, "state: absent")
		return nil
	}
	fmt.Fprintf(out, "age: %s\n", st.Age.Round(time.Minute))
	if st.Fresh {
		fmt.Fprintln(out, "state: fresh")
	} else {
		fmt.Fprintln(out, "state: stale")
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	cache := opennem.NewCache(cfg.Cache, logger.NopLogger{})
	return cache.Clear()
}

func runCacheRefresh(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	reg, err := svc.Source().Refresh(ctx)
	if err != nil {
		return err
	}
	logg.Infof("refreshed registry cache with %d facilities", len(reg))
	return nil
}

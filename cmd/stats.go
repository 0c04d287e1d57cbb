package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emap-tools/aucap/app"
	"github.com/emap-tools/aucap/core/capacity"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the commissioned generation fleet",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, _, err := setup()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	reg, err := svc.Source().Registry(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	byRegion := capacity.ByRegion(reg)
	regions := make([]string, 0, len(byRegion))
	for id := range byRegion {
		regions = append(regions, id)
	}
	sort.Strings(regions)
	fmt.Fprintln(tw, "REGION\tFACILITIES\tUNITS")
	for _, id := range regions {
		rs := byRegion[id]
		fmt.Fprintf(tw, "%s\t%d\t%d\n", id, rs.Facilities, rs.Units)
	}
	fmt.Fprintln(tw)

	unitStats := capacity.UnitStats(reg)
	fuels := make([]string, 0, len(unitStats))
	for fuel := range unitStats {
		fuels = append(fuels, fuel)
	}
	sort.Strings(fuels)
	fmt.Fprintln(tw, "FUEL TECH\tUNITS\tTOTAL MW\tMEAN MW\tMAX MW\tSTDDEV")
	for _, fuel := range fuels {
		s := unitStats[fuel]
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			fuel, s.Units, s.TotalMW, s.MeanMW, s.MaxMW, s.StdDev)
	}
	return tw.Flush()
}

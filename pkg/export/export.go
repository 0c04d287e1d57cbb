// Package export renders the generated zone configuration for pasting into
// config files or further processing.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/emap-tools/aucap/core/zones"
)

// WriteJSON writes the zone snippet to w with the given indent width. Object
// keys come out sorted: zone keys and capacity fuel techs are map keys, and
// ZoneConfig declares its fields in alphabetical tag order.
func WriteJSON(w io.Writer, zoneData map[string]zones.ZoneConfig, indent int) error {
	data, err := json.MarshalIndent(zoneData, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("marshal zone data: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write zone data: %w", err)
	}
	return nil
}

// WriteCSV writes one row per zone and fuel tech, sorted by zone then fuel.
func WriteCSV(w io.Writer, zoneData map[string]zones.ZoneConfig) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"zone", "fuel_tech", "capacity_mw"}); err != nil {
		return err
	}
	zoneKeys := make([]string, 0, len(zoneData))
	for key := range zoneData {
		zoneKeys = append(zoneKeys, key)
	}
	sort.Strings(zoneKeys)
	for _, key := range zoneKeys {
		cap := zoneData[key].Capacity
		fuels := make([]string, 0, len(cap))
		for fuel := range cap {
			fuels = append(fuels, fuel)
		}
		sort.Strings(fuels)
		for _, fuel := range fuels {
			rec := []string{key, fuel, strconv.FormatFloat(cap[fuel], 'f', -1, 64)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

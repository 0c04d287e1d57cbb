package capacity

import "strings"

// Fuel tech names after normalization. The upstream registry is more granular
// than the zone configuration wants, and lists loads alongside generators.
const (
	FuelGas            = "gas"
	FuelBiomass        = "biomass"
	FuelOil            = "oil"
	FuelBatteryStorage = "battery storage"
)

// loads are units that consume rather than generate.
var loads = map[string]bool{
	"battery_charging": true,
	"pumps":            true,
}

var renames = map[string]string{
	"distillate":          FuelOil,
	"battery_discharging": FuelBatteryStorage,
}

// NormalizeFuelTech maps an upstream fuel tech onto the name used in zone
// configuration. The second return is false for units that must not be
// counted as generation: loads and units with no fuel classification.
// OpenNEM subdivides gas (gas_ocgt, gas_ccgt, ...) and bioenergy
// (bioenergy_biomass, bioenergy_biogas); those collapse to their family name.
// Unrecognized fuel techs pass through unchanged.
func NormalizeFuelTech(fuelTech string) (string, bool) {
	if fuelTech == "" {
		return "", false
	}
	if loads[fuelTech] {
		return "", false
	}
	if strings.HasPrefix(fuelTech, "gas_") {
		return FuelGas, true
	}
	if strings.HasPrefix(fuelTech, "bioenergy_") {
		return FuelBiomass, true
	}
	if renamed, ok := renames[fuelTech]; ok {
		return renamed, true
	}
	return fuelTech, true
}

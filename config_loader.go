package nsga2

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSettingsFromFile loads DriverSettings from a JSON file. The RNG,
// MultiObjective, and collaborator callbacks are not part of the file and
// must be set up separately before constructing a Driver.
func LoadSettingsFromFile(path string) (DriverSettings, error) {
	var settings DriverSettings

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// SaveSettingsToFile saves DriverSettings to a JSON file.
func SaveSettingsToFile(settings DriverSettings, path string) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// ValidateSettings checks the numeric configuration a Driver will need:
// mu/lambda/k must be positive and at least one objective must be
// selected. It does not check the objective indices against a
// MultiObjective, since the settings file carries no reference to one.
func ValidateSettings(settings DriverSettings) error {
	if settings.Mu <= 0 {
		return fmt.Errorf("mu must be positive (got %d)", settings.Mu)
	}

	if settings.Lambda <= 0 {
		return fmt.Errorf("lambda must be positive (got %d)", settings.Lambda)
	}

	if settings.K <= 0 {
		return fmt.Errorf("k must be positive (got %d)", settings.K)
	}

	if settings.NGen <= 0 {
		return fmt.Errorf("ngen must be positive (got %d)", settings.NGen)
	}

	if len(settings.Selected) == 0 {
		return fmt.Errorf("at least one objective index must be selected")
	}

	for _, idx := range settings.Selected {
		if idx < 0 {
			return fmt.Errorf("selected objective index must be non-negative (got %d)", idx)
		}
	}

	if settings.UseNSGP && settings.NSGPEpsilon <= 0 {
		return fmt.Errorf("nsgp_epsilon must be positive when use_nsgp is set (got %f)", settings.NSGPEpsilon)
	}

	return nil
}

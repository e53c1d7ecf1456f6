package nsga2

// DriverSettings is the JSON-serializable counterpart of Settings: the
// numeric configuration a driver needs, excluding everything that cannot
// be serialized (callbacks, the RNG, the MultiObjective itself).
type DriverSettings struct {
	Mu          int     `json:"mu"`
	Lambda      int     `json:"lambda"`
	K           int     `json:"k"`
	NGen        int     `json:"ngen"`
	Selected    []int   `json:"selected"`
	NSGPEpsilon float64 `json:"nsgp_epsilon,omitempty"`
	UseNSGP     bool    `json:"use_nsgp"`
}

// ToSettings projects a DriverSettings into the Settings the driver
// consumes.
func (s DriverSettings) ToSettings() Settings {
	return Settings{
		Mu:       s.Mu,
		Lambda:   s.Lambda,
		K:        s.K,
		NGen:     s.NGen,
		Selected: s.Selected,
	}
}

// NewDefaultSettings returns a conservative starting configuration for a
// two-objective problem: equal population and offspring size, binary
// tournaments, a 100-generation budget, both objectives active.
func NewDefaultSettings() DriverSettings {
	return DriverSettings{
		Mu:       100,
		Lambda:   100,
		K:        2,
		NGen:     100,
		Selected: []int{0, 1},
	}
}

// NewNSGPSettings returns NewDefaultSettings with the NSGP grouping policy
// enabled at the given similarity threshold.
func NewNSGPSettings(epsilon float64) DriverSettings {
	s := NewDefaultSettings()
	s.UseNSGP = true
	s.NSGPEpsilon = epsilon

	return s
}

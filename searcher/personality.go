package searcher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rubicon/game"
)

// Personality re-weights the heuristic without changing legality. Used
// by story opponents; the zero value plus DefaultPersonality() is the
// plain competitive profile.
type Personality struct {
	Name string `yaml:"name"`

	// Heuristic weights. All default to 1.
	MaterialWeight float64 `yaml:"material_weight"`
	PatternWeight  float64 `yaml:"pattern_weight"`
	ThreatWeight   float64 `yaml:"threat_weight"`
	CaptureBonus   float64 `yaml:"capture_bonus"` // Extra per captured stone

	// Behavioral biases.
	AvoidBreak     bool   `yaml:"avoid_break"`     // Never plays Break
	MirrorLast     bool   `yaml:"mirror_last"`     // Bonus for repeating the opponent's last action type
	FavoredPattern string `yaml:"favored_pattern"` // Bonus for locking this pattern family
}

// DefaultPersonality returns the neutral competitive profile.
func DefaultPersonality() Personality {
	return Personality{
		Name:           "standard",
		MaterialWeight: 1,
		PatternWeight:  1,
		ThreatWeight:   1,
	}
}

// favoredType resolves the configured pattern family name, if any.
func (p Personality) favoredType() (game.PatternType, bool) {
	switch p.FavoredPattern {
	case "Line":
		return game.LinePattern, true
	case "Bend":
		return game.BendPattern, true
	case "Gate":
		return game.GatePattern, true
	case "Cross":
		return game.CrossPattern, true
	case "Pod":
		return game.PodPattern, true
	case "Hook":
		return game.HookPattern, true
	default:
		return 0, false
	}
}

// LoadPersonalities reads a YAML profile file into a name-keyed map.
func LoadPersonalities(path string) (map[string]Personality, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read personality file: %w", err)
	}
	return ParsePersonalities(data)
}

// ParsePersonalities parses YAML of the form:
//
//	profiles:
//	  - name: raider
//	    capture_bonus: 0.5
//	    avoid_break: true
func ParsePersonalities(data []byte) (map[string]Personality, error) {
	var doc struct {
		Profiles []Personality `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse personality file: %w", err)
	}
	profiles := make(map[string]Personality, len(doc.Profiles))
	for _, p := range doc.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("personality profile missing name")
		}
		if p.MaterialWeight == 0 {
			p.MaterialWeight = 1
		}
		if p.PatternWeight == 0 {
			p.PatternWeight = 1
		}
		if p.ThreatWeight == 0 {
			p.ThreatWeight = 1
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

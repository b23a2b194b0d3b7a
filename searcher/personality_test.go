package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePersonalities(t *testing.T) {
	doc := []byte(`
profiles:
  - name: raider
    capture_bonus: 0.5
    material_weight: 1.5
  - name: pacifist
    avoid_break: true
    pattern_weight: 2
  - name: mimic
    mirror_last: true
  - name: gatekeeper
    favored_pattern: Gate
`)
	profiles, err := ParsePersonalities(doc)
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	raider := profiles["raider"]
	require.Equal(t, 0.5, raider.CaptureBonus)
	require.Equal(t, 1.5, raider.MaterialWeight)
	require.Equal(t, 1.0, raider.PatternWeight, "unset weights default to 1")

	require.True(t, profiles["pacifist"].AvoidBreak)
	require.True(t, profiles["mimic"].MirrorLast)

	favored, ok := profiles["gatekeeper"].favoredType()
	require.True(t, ok)
	require.Equal(t, "Gate", favored.String())
}

func TestParsePersonalitiesRequiresName(t *testing.T) {
	_, err := ParsePersonalities([]byte("profiles:\n  - capture_bonus: 1\n"))
	require.Error(t, err)
}

func TestParsePersonalitiesBadYAML(t *testing.T) {
	_, err := ParsePersonalities([]byte("profiles: ["))
	require.Error(t, err)
}

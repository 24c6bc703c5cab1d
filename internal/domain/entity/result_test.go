package entity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultRow_Stem(t *testing.T) {
	require.Equal(t, "0001TP_009900", ResultRow{Image: "0001TP_009900.png"}.Stem())
	require.Equal(t, "frame", ResultRow{Image: "sub/frame.jpg"}.Stem())
	require.Equal(t, "noext", ResultRow{Image: "noext"}.Stem())
}

func TestResultRow_ScoreTitle(t *testing.T) {
	row := ResultRow{
		Image:               "0001TP_009900.png",
		DicePeopleBaseline:  0.81,
		DicePeopleImproved:  0.87,
		DiceVehicleBaseline: 0.74,
		DiceVehicleImproved: 0.79,
	}

	require.Equal(t, "People (Baseline)\nDice=0.810", row.ScoreTitle(ClassPeople, VariantBaseline))
	require.Equal(t, "People (Improved)\nDice=0.870", row.ScoreTitle(ClassPeople, VariantImproved))
	require.Equal(t, "Vehicle (Baseline)\nDice=0.740", row.ScoreTitle(ClassVehicle, VariantBaseline))
	require.Equal(t, "Vehicle (Improved)\nDice=0.790", row.ScoreTitle(ClassVehicle, VariantImproved))
}

func TestPathBundle_Paths(t *testing.T) {
	p := PathBundle{ImageDir: "img", LabelDir: "lbl", BaselineMaskDir: "mb", ImprovedMaskDir: "mi"}

	require.Equal(t, filepath.Join("img", "a.png"), p.ImagePath("a.png"))
	require.Equal(t, []string{filepath.Join("lbl", "a.png"), filepath.Join("lbl", "a_L.png")}, p.LabelCandidates("a"))
	require.Equal(t, filepath.Join("mb", "a_people.png"), p.MaskPath("a", ClassPeople, VariantBaseline))
	require.Equal(t, filepath.Join("mi", "a_vehicle.png"), p.MaskPath("a", ClassVehicle, VariantImproved))
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_WithoutSpectralData(t *testing.T) {
	stdout, _, err := executeCommand(t, "--spectral-path", t.TempDir()+"/missing.csv", "demo", "--seed", "7")
	require.NoError(t, err, "a missing dataset must not fail the demo")

	assert.Contains(t, stdout, "Mixing RGB(55, 32, 120) with random")
	assert.Contains(t, stdout, "XYZ: XYZ(")
	assert.Contains(t, stdout, "Color: RGB(55, 32, 120)\nRGB_VEC(")
	assert.Contains(t, stdout, "Palette default")
	assert.Contains(t, stdout, "Error opening spectral data")
	assert.Contains(t, stdout, "Demo complete")
	assert.NotContains(t, stdout, "WAVELENGTH")
}

func TestDemo_WithSpectralData(t *testing.T) {
	path := writeFile(t, "cie.csv", cieSample)

	stdout, _, err := executeCommand(t, "--spectral-path", path, "demo", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "4 records")
	assert.NotContains(t, stdout, "Error opening spectral data")
}

func TestDemo_MalformedDataIsNotFatal(t *testing.T) {
	path := writeFile(t, "bad.csv", "380,0.1,0.2,0.3\nnot,a,row,here\n")

	stdout, _, err := executeCommand(t, "--spectral-path", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Spectral listing stopped after 1 records")
	assert.Contains(t, stdout, "Demo complete")
}

func TestDemo_SeedIsDeterministic(t *testing.T) {
	missing := t.TempDir() + "/missing.csv"
	first, _, err := executeCommand(t, "--spectral-path", missing, "demo", "--seed", "42")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "--spectral-path", missing, "demo", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, randomColor(42), randomColor(42))
}

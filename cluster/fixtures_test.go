package cluster

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name        string `yaml:"name"`
	Steps       int    `yaml:"steps"`
	Bounded     int    `yaml:"bounded"`
	Convergence int    `yaml:"convergence"`
	Points      string `yaml:"points"`
}

func loadFixtures(t testing.TB) []fixture {
	t.Helper()
	b, err := os.ReadFile("testdata/day08.yaml")
	require.NoError(t, err)
	var fs []fixture
	require.NoError(t, yaml.Unmarshal(b, &fs))
	require.NotEmpty(t, fs)
	return fs
}

func loadFixture(t testing.TB, name string) fixture {
	t.Helper()
	for _, f := range loadFixtures(t) {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no fixture %q", name)
	return fixture{}
}

func (f fixture) points(t testing.TB) []Point {
	t.Helper()
	pts, err := ParseBytes([]byte(f.Points))
	require.NoError(t, err)
	return pts
}

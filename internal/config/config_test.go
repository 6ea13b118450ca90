package config

import (
	"os"
	"path/filepath"
	"testing"

	"cardroom/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	a := assert.New(t)

	unset := util.SetEnv("CARDROOM_CONFIG_FILE", "does-not-exist.yaml")
	defer unset()

	a.NoError(Load())
	c := Instance()
	a.Equal(2500, c.Simulation.Iterations)
	a.Equal(4, c.Simulation.Workers)
	a.Equal(4, c.Betting.RaiseCap)
	a.Equal(25, c.Betting.ChipIncrement)
}

func TestLoad_fileAndEnvOverride(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `simulation:
  iterations: 5000
betting:
  raiseCap: 3
`
	a.NoError(os.WriteFile(path, []byte(contents), 0644))

	unset1 := util.SetEnv("CARDROOM_CONFIG_FILE", path)
	defer unset1()
	unset2 := util.SetEnv("CARDROOM_SIMULATION_WORKERS", "2")
	defer unset2()

	a.NoError(Load())
	c := Instance()
	a.Equal(5000, c.Simulation.Iterations)
	a.Equal(2, c.Simulation.Workers)
	a.Equal(3, c.Betting.RaiseCap)
	a.Equal(25, c.Betting.ChipIncrement)
}

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsfetch.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFetchFlags(t *testing.T) {
	cfg := &config.Fetch{}
	flags := cfg.Flags()

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.V(t, len(flags)).Equal(4)
	gt.True(t, flagNames["output-dir"])
	gt.True(t, flagNames["dataset"])
	gt.True(t, flagNames["kaggle-path"])
	gt.True(t, flagNames["config"])
}

func TestLoadFile(t *testing.T) {
	t.Run("decode all keys", func(t *testing.T) {
		path := writeConfig(t, `
dataset = "owner/sample-data"
output_dir = "./out"
kaggle_path = "/usr/local/bin/kaggle"
`)
		file := gt.R1(config.LoadFile(path)).NoError(t)
		gt.V(t, file.Dataset).Equal("owner/sample-data")
		gt.V(t, file.OutputDir).Equal("./out")
		gt.V(t, file.KagglePath).Equal("/usr/local/bin/kaggle")
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		path := writeConfig(t, `datasets = "owner/name"`)
		_, err := config.LoadFile(path)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("broken toml is rejected", func(t *testing.T) {
		path := writeConfig(t, `dataset = `)
		_, err := config.LoadFile(path)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "none.toml"))
		gt.Error(t, err)
	})
}

func TestFetchLoad(t *testing.T) {
	body := `
dataset = "owner/from-file"
output_dir = "file-dir"
`

	t.Run("no config file keeps values", func(t *testing.T) {
		cfg := &config.Fetch{
			Dataset:   config.DefaultDataset,
			OutputDir: config.DefaultOutputDir,
		}
		gt.NoError(t, cfg.Load(func(string) bool { return false }))
		gt.V(t, cfg.Dataset).Equal(config.DefaultDataset)
		gt.V(t, cfg.OutputDir).Equal(config.DefaultOutputDir)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg := &config.Fetch{
			Dataset:    config.DefaultDataset,
			OutputDir:  config.DefaultOutputDir,
			KagglePath: config.DefaultKagglePath,
			ConfigFile: writeConfig(t, body),
		}
		gt.NoError(t, cfg.Load(func(string) bool { return false }))
		gt.V(t, cfg.Dataset).Equal("owner/from-file")
		gt.V(t, cfg.OutputDir).Equal("file-dir")
		gt.V(t, cfg.KagglePath).Equal(config.DefaultKagglePath)
	})

	t.Run("explicit option overrides file", func(t *testing.T) {
		cfg := &config.Fetch{
			Dataset:    "owner/from-flag",
			OutputDir:  config.DefaultOutputDir,
			ConfigFile: writeConfig(t, body),
		}
		gt.NoError(t, cfg.Load(func(name string) bool { return name == "dataset" }))
		gt.V(t, cfg.Dataset).Equal("owner/from-flag")
		gt.V(t, cfg.OutputDir).Equal("file-dir")
	})
}

func TestFetchInput(t *testing.T) {
	cfg := &config.Fetch{
		Dataset:   "owner/name",
		OutputDir: "out",
	}
	input := cfg.Input()
	gt.V(t, input.Dataset).Equal(types.DatasetID("owner/name"))
	gt.V(t, input.OutputDir).Equal("out")
}

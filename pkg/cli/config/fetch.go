package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

const (
	DefaultDataset    = "barclaysav/b-interview-arxiv-dataset"
	DefaultOutputDir  = "data/raw"
	DefaultKagglePath = "kaggle"
)

// Fetch holds options of a dataset fetch. Values given by flags or environment variables take precedence over the config file, which takes precedence over defaults.
type Fetch struct {
	Dataset    string
	OutputDir  string
	KagglePath string
	ConfigFile string
}

// File is the TOML representation of Fetch
type File struct {
	Dataset    string `toml:"dataset"`
	OutputDir  string `toml:"output_dir"`
	KagglePath string `toml:"kaggle_path"`
}

func (x *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"d"},
			Usage:       "Output directory for dataset",
			Value:       DefaultOutputDir,
			Sources:     cli.EnvVars("DSFETCH_OUTPUT_DIR"),
			Destination: &x.OutputDir,
		},
		&cli.StringFlag{
			Name:        "dataset",
			Aliases:     []string{"s"},
			Usage:       "Kaggle dataset name (owner/name)",
			Value:       DefaultDataset,
			Sources:     cli.EnvVars("DSFETCH_DATASET"),
			Destination: &x.Dataset,
		},
		&cli.StringFlag{
			Name:        "kaggle-path",
			Usage:       "Path to kaggle binary",
			Value:       DefaultKagglePath,
			Sources:     cli.EnvVars("DSFETCH_KAGGLE_PATH"),
			Destination: &x.KagglePath,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML config file",
			Sources:     cli.EnvVars("DSFETCH_CONFIG"),
			Destination: &x.ConfigFile,
		},
	}
}

// Load reads the config file if given and fills options that were not set explicitly
func (x *Fetch) Load(isSet func(name string) bool) error {
	if x.ConfigFile == "" {
		return nil
	}

	file, err := LoadFile(x.ConfigFile)
	if err != nil {
		return err
	}

	if file.Dataset != "" && !isSet("dataset") {
		x.Dataset = file.Dataset
	}
	if file.OutputDir != "" && !isSet("output-dir") {
		x.OutputDir = file.OutputDir
	}
	if file.KagglePath != "" && !isSet("kaggle-path") {
		x.KagglePath = file.KagglePath
	}

	return nil
}

func (x *Fetch) Input() *model.FetchDatasetInput {
	return &model.FetchDatasetInput{
		Dataset:   types.DatasetID(x.Dataset),
		OutputDir: x.OutputDir,
	}
}

func (x *Fetch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dataset", x.Dataset),
		slog.String("output_dir", x.OutputDir),
		slog.String("kaggle_path", x.KagglePath),
		slog.String("config", x.ConfigFile),
	)
}

// LoadFile decodes a TOML config file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	var file File
	if err := toml.NewDecoder(fd).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrInvalidOption, err), "failed to decode config file", goerr.V("path", path))
	}

	return &file, nil
}

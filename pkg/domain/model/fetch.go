package model

import (
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type FetchDatasetInput struct {
	Dataset   types.DatasetID
	OutputDir string
}

func (x *FetchDatasetInput) Validate() error {
	if x.Dataset == "" {
		return goerr.Wrap(types.ErrInvalidOption, "dataset is empty")
	}
	if x.OutputDir == "" {
		return goerr.Wrap(types.ErrInvalidOption, "output directory is empty")
	}
	return nil
}

// ArchivePath returns the path where the transfer tool is expected to place the dataset archive
func (x *FetchDatasetInput) ArchivePath() string {
	return filepath.Join(x.OutputDir, x.Dataset.ArchiveName())
}

func (x *FetchDatasetInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dataset", x.Dataset.String()),
		slog.String("output_dir", x.OutputDir),
	)
}

// FetchDatasetResult describes a completed fetch. Files are relative to OutputDir and use the OS path separator.
type FetchDatasetResult struct {
	Dataset   types.DatasetID
	OutputDir string
	Files     []string
}

package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// FetchDataset downloads a dataset archive with the Kaggle CLI into the output directory, extracts all entries there and removes the archive.
// The archive is expected at <output dir>/<last segment of dataset ID>.zip. Every failure is returned as is; nothing is retried or rolled back.
func (x *UseCase) FetchDataset(ctx context.Context, input *model.FetchDatasetInput) (*model.FetchDatasetResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	logger := logging.From(ctx)

	logger.Info("downloading dataset", "input", input)
	if err := x.clients.Kaggle().Run(ctx, []string{
		"datasets",
		"download",
		input.Dataset.String(),
		"-p", input.OutputDir,
	}); err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrTransferFailed, err), "failed to download dataset",
			goerr.V("dataset", input.Dataset),
			goerr.V("output_dir", input.OutputDir),
		)
	}

	archivePath := input.ArchivePath()
	if _, err := os.Stat(archivePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(types.ErrArchiveNotFound, "downloaded archive does not exist",
				goerr.V("path", archivePath),
				goerr.V("dataset", input.Dataset),
			)
		}
		return nil, goerr.Wrap(err, "failed to check downloaded archive", goerr.V("path", archivePath))
	}

	files, err := extractZipFile(ctx, archivePath, input.OutputDir)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrExtractionFault, err), "failed to extract dataset",
			goerr.V("archive", archivePath),
			goerr.V("output_dir", input.OutputDir),
		)
	}
	logger.Info("dataset extracted", "output_dir", input.OutputDir, "files", len(files))

	if err := removeArchive(archivePath); err != nil {
		return nil, err
	}
	logger.Debug("archive removed", "path", archivePath)

	return &model.FetchDatasetResult{
		Dataset:   input.Dataset,
		OutputDir: input.OutputDir,
		Files:     files,
	}, nil
}

// removeArchive deletes the archive. A missing file is not an error.
func removeArchive(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove archive", goerr.V("path", path))
	}
	return nil
}

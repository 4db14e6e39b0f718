package interfaces

import (
	"context"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
)

type UseCase interface {
	FetchDataset(ctx context.Context, input *model.FetchDatasetInput) (*model.FetchDatasetResult, error)
}

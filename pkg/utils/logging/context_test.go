package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxFetchID(t *testing.T) {
	t.Run("get new fetch ID from context", func(t *testing.T) {
		ctx := context.Background()

		id, newCtx := logging.CtxFetchID(ctx)
		gt.V(t, id).NotEqual("")
		retrievedID, _ := logging.CtxFetchID(newCtx)
		gt.V(t, retrievedID).Equal(id)
	})

	t.Run("get existing fetch ID from context", func(t *testing.T) {
		ctx := context.Background()

		id1, ctx1 := logging.CtxFetchID(ctx)
		id2, _ := logging.CtxFetchID(ctx1)
		gt.V(t, id1).Equal(id2)
	})
}

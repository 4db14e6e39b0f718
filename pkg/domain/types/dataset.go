package types

import (
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
)

type (
	// DatasetID is a Kaggle style dataset identifier such as "owner/name"
	DatasetID string
	FetchID   string
	SentryDSN string
)

func (x DatasetID) String() string {
	return string(x)
}

// Name returns the last path segment of the identifier
func (x DatasetID) Name() string {
	return path.Base(strings.TrimRight(string(x), "/"))
}

// ArchiveName returns the file name the transfer tool is expected to write. The name is derived from the identifier only, so a change of the tool's naming convention shows up as a missing archive.
func (x DatasetID) ArchiveName() string {
	return x.Name() + ".zip"
}

func NewFetchID() FetchID {
	return FetchID(uuid.NewString())
}

func (x SentryDSN) String() string {
	if x == "" {
		return ""
	}
	return "***********"
}

func (x SentryDSN) LogValue() slog.Value {
	return slog.StringValue(x.String())
}

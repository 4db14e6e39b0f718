package usecase

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/dsfetch/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// extractZipFile extracts every entry of src into dst and returns the extracted file paths relative to dst
func extractZipFile(ctx context.Context, src, dst string) ([]string, error) {
	zipFile, err := zip.OpenReader(src)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip file", goerr.V("file", src))
	}
	defer safe.Close(zipFile)

	var files []string
	for _, f := range zipFile.File {
		target, err := extractEntry(ctx, f, dst)
		if err != nil {
			return nil, err
		}
		if target != "" {
			files = append(files, target)
		}
	}

	return files, nil
}

// extractEntry writes one zip entry under dst. It returns the relative path of a written file, or "" for directories and empty names.
func extractEntry(ctx context.Context, f *zip.File, dst string) (string, error) {
	target, err := entryPath(f.Name)
	if err != nil {
		return "", err
	}
	if target == "" {
		return "", nil
	}

	fpath := filepath.Join(dst, target)
	if rel, err := filepath.Rel(dst, fpath); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", goerr.Wrap(types.ErrExtractionFault, "illegal file path of zip", goerr.V("path", fpath))
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(fpath, 0o755); err != nil {
			return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
		}
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(fpath), 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	n, err := writeEntry(f, fpath)
	if err != nil {
		return "", err
	}
	logging.From(ctx).Debug("extracted", "path", fpath, "size", n)

	return target, nil
}

// openFile creates or truncates an extracted file
var openFile = func(name string, perm os.FileMode) (io.WriteCloser, error) {
	// #nosec
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// writeEntry copies the entry content into fpath. Owner write permission is always kept so a later fetch can overwrite the file.
func writeEntry(f *zip.File, fpath string) (int64, error) {
	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	perm |= 0o200

	rc, err := f.Open()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open zip entry", goerr.V("name", f.Name))
	}
	defer safe.Close(rc)

	out, err := openFile(fpath, perm)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open file", goerr.V("fpath", fpath))
	}

	// #nosec
	n, copyErr := io.Copy(out, rc)
	closeErr := out.Close()
	if copyErr != nil {
		return 0, goerr.Wrap(copyErr, "failed to copy file content", goerr.V("name", f.Name))
	}
	if closeErr != nil {
		return 0, goerr.Wrap(errors.Join(types.ErrExtractionFault, closeErr), "failed to close extracted file", goerr.V("fpath", fpath))
	}

	return n, nil
}

// entryPath converts a zip entry name into a relative OS path. Parent directory references are rejected.
func entryPath(name string) (string, error) {
	normalized := strings.ReplaceAll(name, "\\", "/")
	normalized = strings.TrimLeft(normalized, "/")
	if normalized == "" {
		return "", nil
	}

	var parts []string
	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			return "", goerr.Wrap(types.ErrExtractionFault, "illegal file path of zip", goerr.V("path", name))
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return "", nil
	}

	return filepath.Join(parts...), nil
}

package usecase

import (
	"io"
	"os"
)

// Export unexported functions for testing
var (
	ExtractZipFileForTest = extractZipFile
	ExtractEntryForTest   = extractEntry
	EntryPathForTest      = entryPath
	RemoveArchiveForTest  = removeArchive
)

// SetOpenFileForTest replaces the file opener used by extraction and returns a function restoring it
func SetOpenFileForTest(fn func(name string, perm os.FileMode) (io.WriteCloser, error)) func() {
	orig := openFile
	openFile = fn
	return func() { openFile = orig }
}

package static

import (
	"embed"
	"io/fs"
)

// FS exposes portfolio static assets for HTTP serving and export.
//
//go:embed *.css
var FS embed.FS

// Files returns the assets with directories hidden, so a file server over
// it answers 404 instead of listing the directory.
func Files() fs.FS {
	return filesOnly{FS}
}

type filesOnly struct {
	fsys fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

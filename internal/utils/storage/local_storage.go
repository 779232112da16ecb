package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type localStorage struct {
	root string
}

// NewLocalStorage writes files below root, which is served as the public
// static directory.
func NewLocalStorage(root string) FileStorage {
	return &localStorage{root: root}
}

func (s *localStorage) Save(_ context.Context, file *multipart.FileHeader, subFolder string) (string, error) {
	if isEmpty(file) {
		return "", nil
	}

	key := objectKey(subFolder, uniqueName(file.Filename))
	target := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := writeFile(target, src); err != nil {
		return "", err
	}
	return "/" + key, nil
}

// writeFile copies src into a new file at target. A partially written file
// is removed.
func writeFile(target string, src io.Reader) error {
	dst, err := os.Create(target)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rerr := os.Remove(target); rerr != nil && !os.IsNotExist(rerr) {
			log.Warnf("error removing partial file %s: %v", target, rerr)
		}
		return err
	}
	return nil
}

func (s *localStorage) Delete(_ context.Context, locator string) {
	if locator == "" {
		return
	}
	rel := path.Clean(strings.TrimPrefix(locator, "/"))
	if !strings.HasPrefix(rel, "uploads/") {
		if strings.Contains(locator, "..") {
			log.Warnf("refusing to delete file outside uploads: %s", locator)
		}
		return
	}
	target := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		log.Warnf("error deleting file %s: %v", locator, err)
	}
}

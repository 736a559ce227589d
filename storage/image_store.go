package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type File struct {
	Name    string
	Content io.Reader
}

// ImageStore writes room images to disk under collision-resistant names and
// derives their public URLs. The directory is served statically by the app.
type ImageStore struct {
	dir     string
	baseURL string
	log     *logrus.Logger
}

func NewImageStore(dir, baseURL string, log *logrus.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create image store dir: %w", err)
	}
	return &ImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// SaveAll stores every file under a fresh uuid name keeping the original
// extension and returns public URLs in input order. The first failure aborts
// the rest of the batch; files written before the failure are not removed.
func (s *ImageStore) SaveAll(files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name))
		name := uuid.New().String() + ext

		dst, err := os.Create(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("store image %s: %w", file.Name, err)
		}
		_, err = io.Copy(dst, file.Content)
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, fmt.Errorf("store image %s: %w", file.Name, err)
		}

		s.log.Infof("stored room image %s as %s", file.Name, name)
		urls = append(urls, s.PublicURL(name))
	}
	return urls, nil
}

func (s *ImageStore) PublicURL(name string) string {
	return s.baseURL + "/" + name
}

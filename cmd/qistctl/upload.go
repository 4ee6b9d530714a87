package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/clubpro-dev/qistadmin/internal/imaging"
	"github.com/clubpro-dev/qistadmin/sdk/client"
)

const (
	uploadMaxDim    = 1200
	uploadQuality   = 85
	uploadExtension = ".jpg"
)

// imageUpload reads an image file, letterboxes it down to the standard
// upload dimensions, and wraps the re-encoded JPEG for multipart upload.
func imageUpload(field, path string) (*client.Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	resized := imaging.Resize(src, uploadMaxDim, uploadMaxDim)
	data, err := imaging.EncodeJPEG(resized, uploadQuality)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + uploadExtension
	return &client.Upload{
		Field:    field,
		FileName: name,
		Reader:   bytes.NewReader(data),
	}, nil
}

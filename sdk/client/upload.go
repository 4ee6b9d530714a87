package client

import (
	"context"
	"io"
)

// Upload is a file part of a multipart request.
type Upload struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// upload sends a multipart form with the given text fields and file parts.
// Image-bearing resources (brand logos, product images, dealer agreements,
// profile pictures) all go through here.
func (c *Client) upload(ctx context.Context, method, path string, fields map[string]string, files []Upload, out any) error {
	r := c.req(ctx)
	if len(fields) > 0 {
		r.SetFormData(fields)
	}
	for _, f := range files {
		if f.Reader == nil {
			continue
		}
		r.SetFileReader(f.Field, f.FileName, f.Reader)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Execute(method, c.base+path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return restyErr(resp)
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
)

// AdminAPI covers admin-only operations. The backend authorizes these
// independently; the client-side role check is a convenience only.
type AdminAPI struct {
	client *Client
}

// UploadResult acknowledges a bulk upload.
type UploadResult struct {
	Message string `json:"message"`
}

// UploadStudentsCSV bulk-imports student records from a CSV file. Rows are
// upserted by email server-side, so re-uploading the same file is safe.
func (a *AdminAPI) UploadStudentsCSV(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	req, err := a.client.newRequest(ctx, "POST", "/admin/upload", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out UploadResult
	if err := a.client.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

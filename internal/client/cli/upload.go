package cli

import (
	"context"
	"fmt"
	"os"
)

// Upload bulk-imports students from a local CSV file. Admin only.
func (a *App) Upload(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	path, err := getSimpleText(a.reader, "CSV file path", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}
	defer f.Close()

	result, err := a.api.Admin.UploadStudentsCSV(ctx, path, f)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, result.Message)
	return nil
}

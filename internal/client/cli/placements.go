package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/campushq/placetrack/internal/client/api"
	"github.com/campushq/placetrack/internal/client/models"
	"github.com/campushq/placetrack/internal/common"
)

func parseDriveStatus(s string) (models.DriveStatus, error) {
	switch models.DriveStatus(s) {
	case models.DriveStartingSoon, models.DriveOngoing, models.DriveCompleted:
		return models.DriveStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q (expected starting_soon, ongoing or completed)", s)
}

func formatPackage(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}

// Placements lists placement drives, prompting for the optional filters.
func (a *App) Placements(ctx context.Context) error {
	if !a.requireUser(ctx) {
		return nil
	}

	params := api.DriveListParams{}

	company, err := GetOptionalText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	params.Company = company

	status, err := GetOptionalText(a.reader, "Status (starting_soon/ongoing/completed)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		s, err := parseDriveStatus(status)
		if err != nil {
			fmt.Fprintf(a.out, "error: %s\n", err)
			return err
		}
		params.Status = s
	}

	drives, err := a.api.Placements.List(ctx, params)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	if len(drives) == 0 {
		fmt.Fprintln(a.out, "No placement drives found")
		return nil
	}

	for _, d := range drives {
		fmt.Fprintf(a.out, "#%d  %-25s  %-13s  package %s\n", d.ID, d.Company, d.Status, formatPackage(d.Package))
	}
	return nil
}

// PlacementShow prints one drive in full. The id comes from the command
// argument, or is prompted for.
func (a *App) PlacementShow(ctx context.Context, args []string) error {
	if !a.requireUser(ctx) {
		return nil
	}

	var id int64
	if len(args) > 0 {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || v <= 0 {
			fmt.Fprintf(a.out, "Invalid drive id: %s\n", args[0])
			return err
		}
		id = v
	} else {
		v, err := GetID(a.reader, "Drive id", a.out)
		if err != nil {
			return err
		}
		id = v
	}

	drive, err := a.api.Placements.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Drive %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "#%d %s [%s]\n", drive.ID, drive.Company, drive.Status)
	if drive.StartDate != "" || drive.EndDate != "" {
		fmt.Fprintf(a.out, "Window: %s .. %s\n", drive.StartDate, drive.EndDate)
	}
	fmt.Fprintf(a.out, "Package: %s\n", formatPackage(drive.Package))
	if drive.Description != "" {
		fmt.Fprintf(a.out, "%s\n", drive.Description)
	}
	return nil
}

// AddDrive creates a placement drive. Admin only.
func (a *App) AddDrive(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	company, err := getSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}

	statusText, err := getSimpleText(a.reader, "Status (starting_soon/ongoing/completed)", a.out)
	if err != nil {
		return err
	}
	status, err := parseDriveStatus(statusText)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	startDate, err := GetOptionalText(a.reader, "Start date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	endDate, err := GetOptionalText(a.reader, "End date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}

	input := api.DriveInput{
		Company:   company,
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
	}

	pkgText, err := GetOptionalText(a.reader, "Package", a.out)
	if err != nil {
		return err
	}
	if pkgText != "" {
		pkg, err := strconv.ParseInt(pkgText, 10, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid package value: %s\n", pkgText)
			return err
		}
		input.Package = &pkg
	}

	description, err := GetOptionalText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	input.Description = description

	result, err := a.api.Placements.Create(ctx, input)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Created drive #%d\n", result.ID)
	return nil
}

// EditDrive applies a partial update to a drive. Empty answers leave the
// corresponding field untouched. Admin only.
func (a *App) EditDrive(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	id, err := GetID(a.reader, "Drive id", a.out)
	if err != nil {
		return err
	}

	patch := api.DrivePatch{}

	company, err := GetOptionalText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	if company != "" {
		patch.Company = &company
	}

	statusText, err := GetOptionalText(a.reader, "Status (starting_soon/ongoing/completed)", a.out)
	if err != nil {
		return err
	}
	if statusText != "" {
		status, err := parseDriveStatus(statusText)
		if err != nil {
			fmt.Fprintf(a.out, "error: %s\n", err)
			return err
		}
		patch.Status = &status
	}

	pkgText, err := GetOptionalText(a.reader, "Package", a.out)
	if err != nil {
		return err
	}
	if pkgText != "" {
		pkg, err := strconv.ParseInt(pkgText, 10, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid package value: %s\n", pkgText)
			return err
		}
		patch.Package = &pkg
	}

	if err := a.api.Placements.Update(ctx, id, patch); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Drive %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Updated drive #%d\n", id)
	return nil
}

// DeleteDrive removes a drive. Admin only.
func (a *App) DeleteDrive(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	id, err := GetID(a.reader, "Drive id", a.out)
	if err != nil {
		return err
	}

	if err := a.api.Placements.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Drive %d not found\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Deleted drive #%d\n", id)
	return nil
}

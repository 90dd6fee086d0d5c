package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/campushq/placetrack/internal/client/models"
)

// PlacementsAPI covers CRUD on /placements.
type PlacementsAPI struct {
	client *Client
}

// DriveListParams are the optional list filters; zero values are omitted
// from the query string.
type DriveListParams struct {
	Company string
	Status  models.DriveStatus
	Limit   int
	Cursor  int64
}

func (p DriveListParams) values() url.Values {
	q := url.Values{}
	if p.Company != "" {
		q.Set("company", p.Company)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor > 0 {
		q.Set("cursor", strconv.FormatInt(p.Cursor, 10))
	}
	return q
}

// DriveInput is the create payload. ID is server-assigned.
type DriveInput struct {
	Company     string             `json:"company"`
	Status      models.DriveStatus `json:"status"`
	StartDate   string             `json:"start_date,omitempty"`
	EndDate     string             `json:"end_date,omitempty"`
	Package     *int64             `json:"package,omitempty"`
	Description string             `json:"description,omitempty"`
}

// DrivePatch is a partial update; nil fields are left untouched.
type DrivePatch struct {
	Company     *string             `json:"company,omitempty"`
	Status      *models.DriveStatus `json:"status,omitempty"`
	StartDate   *string             `json:"start_date,omitempty"`
	EndDate     *string             `json:"end_date,omitempty"`
	Package     *int64              `json:"package,omitempty"`
	Description *string             `json:"description,omitempty"`
}

func (p *PlacementsAPI) List(ctx context.Context, params DriveListParams) ([]models.PlacementDrive, error) {
	var out []models.PlacementDrive
	if err := p.client.do(ctx, "GET", "/placements", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *PlacementsAPI) Get(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	var out models.PlacementDrive
	if err := p.client.do(ctx, "GET", fmt.Sprintf("/placements/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlacementsAPI) Create(ctx context.Context, input DriveInput) (*CreateResult, error) {
	var out CreateResult
	if err := p.client.do(ctx, "POST", "/placements", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PlacementsAPI) Update(ctx context.Context, id int64, patch DrivePatch) error {
	var out StatusResult
	return p.client.do(ctx, "PUT", fmt.Sprintf("/placements/%d", id), nil, patch, &out)
}

func (p *PlacementsAPI) Delete(ctx context.Context, id int64) error {
	var out StatusResult
	return p.client.do(ctx, "DELETE", fmt.Sprintf("/placements/%d", id), nil, nil, &out)
}

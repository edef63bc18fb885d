// Package calhub uploads captured calibration tables to a calibration hub
// service.
package calhub

import (
	"context"
	"fmt"

	"github.com/calvinmclean/babyapi"

	"servocal"
)

type Client struct {
	client *babyapi.Client[*record]
}

type record struct {
	// include NilResource so we don't implement Render/Bind which are not needed
	*babyapi.NilResource
	servocal.Calibration
}

func (r record) GetID() string {
	return r.Calibration.ID
}

func NewClient(addr string) *Client {
	client := babyapi.NewClient[*record](addr, "/calibrations")
	return &Client{client: client}
}

// Upload posts a captured calibration and returns the hub-assigned ID.
func (c *Client) Upload(ctx context.Context, cal servocal.Calibration) (string, error) {
	resp, err := c.client.Post(ctx, &record{Calibration: cal})
	if err != nil {
		return "", fmt.Errorf("error uploading calibration: %w", err)
	}

	return resp.Data.GetID(), nil
}

// Get fetches a previously-uploaded calibration by ID.
func (c *Client) Get(ctx context.Context, id string) (servocal.Calibration, error) {
	resp, err := c.client.Get(ctx, id)
	if err != nil {
		return servocal.Calibration{}, fmt.Errorf("error fetching calibration: %w", err)
	}

	return resp.Data.Calibration, nil
}

package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/branch"
)

var _ branch.API = (*Client)(nil)

func (c *Client) GetBranches(ctx context.Context) ([]branch.Branch, error) {
	var branches []branch.Branch
	if err := c.get(ctx, "get_branches.php", nil, "branches", &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) CreateBranch(ctx context.Context, nb branch.NewBranch) error {
	_, err := c.postForm(ctx, "create_branch.php", url.Values{
		"name":    {nb.Name},
		"address": {nb.Address},
	})
	return err
}

func (c *Client) EditBranch(ctx context.Context, ub branch.UpdateBranch) error {
	_, err := c.postForm(ctx, "edit_branch.php", url.Values{
		"id":      {ub.ID},
		"name":    {ub.Name},
		"address": {ub.Address},
	})
	return err
}

func (c *Client) DeleteBranch(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "delete_branch.php", url.Values{"id": {id}})
	return err
}

func (c *Client) EditCameraURL(ctx context.Context, branchName, cameraURL string) error {
	_, err := c.postForm(ctx, "edit_camera_url.php", url.Values{
		"branch":     {branchName},
		"camera_url": {cameraURL},
	})
	return err
}

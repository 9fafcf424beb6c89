package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/activity"
)

var _ activity.API = (*Client)(nil)

func (c *Client) GetActivities(ctx context.Context, filter activity.QueryFilter) ([]activity.Activity, error) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.Branch != "" {
		query.Set("branch", filter.Branch)
	}
	var acts []activity.Activity
	if err := c.get(ctx, "get_activities.php", query, "activities", &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "delete_activity.php", url.Values{"id": {id}})
	return err
}

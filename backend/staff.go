package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/staff"
)

var _ staff.API = (*Client)(nil)

func (c *Client) GetStaff(ctx context.Context, branchName string) ([]staff.Staff, error) {
	query := url.Values{}
	if branchName != "" {
		query.Set("branch", branchName)
	}
	var records []staff.Staff
	if err := c.get(ctx, "get_staff.php", query, "staff", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateStaff(ctx context.Context, ns staff.NewStaff) error {
	_, err := c.postJSON(ctx, "create_staff.php", ns)
	return err
}

func (c *Client) UpdateStaff(ctx context.Context, us staff.UpdateStaff) error {
	_, err := c.postJSON(ctx, "update_staff.php", us)
	return err
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "delete_staff.php", url.Values{"id": {id}})
	return err
}

func (c *Client) GetStaffReports(ctx context.Context, branchName, month string) ([]staff.Report, error) {
	query := url.Values{}
	if branchName != "" {
		query.Set("branch", branchName)
	}
	if month != "" {
		query.Set("month", month)
	}
	var reports []staff.Report
	if err := c.get(ctx, "get_staff_reports.php", query, "reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) TeacherOnboarding(ctx context.Context, ob staff.Onboarding) error {
	fields := map[string]string{
		"teacher_id":    ob.TeacherID,
		"qualification": ob.Qualification,
		"experience":    ob.Experience,
		"address":       ob.Address,
	}
	_, err := c.postMultipart(ctx, "teacher_onboarding.php", fields, "photo", ob.PhotoPath)
	return err
}

package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/attendance"
)

var _ attendance.API = (*Client)(nil)

func (c *Client) GetAttendance(ctx context.Context, filter attendance.QueryFilter) ([]attendance.Record, error) {
	query := url.Values{}
	if filter.Branch != "" {
		query.Set("branch", filter.Branch)
	}
	if filter.StudentID != "" {
		query.Set("student_id", filter.StudentID)
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	var records []attendance.Record
	if err := c.get(ctx, "get_attendance_v2.php", query, "attendance", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) MarkAttendance(ctx context.Context, rec attendance.Record) error {
	_, err := c.postJSON(ctx, "mark_attendance_v2_debug.php", rec)
	return err
}

package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/homework"
)

var _ homework.API = (*Client)(nil)

func (c *Client) GetStudentHomework(ctx context.Context, studentID string) ([]homework.Homework, error) {
	query := url.Values{"student_id": {studentID}}
	var hw []homework.Homework
	if err := c.get(ctx, "get_student_homework.php", query, "homework", &hw); err != nil {
		return nil, err
	}
	return hw, nil
}

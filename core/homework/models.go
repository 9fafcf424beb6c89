package homework

// Homework mirrors a row from get_student_homework.php.
type Homework struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Date        string `json:"date"`
	TeacherID   string `json:"teacher_id"`
}

func (h Homework) RecordChild() string { return h.StudentID }

package testutil

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/tnhappykids/appcore/core/activity"
	"github.com/tnhappykids/appcore/core/attendance"
	"github.com/tnhappykids/appcore/core/branch"
	"github.com/tnhappykids/appcore/core/chat"
	"github.com/tnhappykids/appcore/core/homework"
	"github.com/tnhappykids/appcore/core/invoice"
	"github.com/tnhappykids/appcore/core/staff"
	"github.com/tnhappykids/appcore/core/user"
)

// FakeBackend speaks the PHP API's exact envelope over in-memory fixtures.
// Seed the exported fields before issuing requests; Calls records how many
// requests each endpoint saw.
type FakeBackend struct {
	app *echo.Echo
	mu  sync.Mutex

	Users      []user.User
	Passwords  map[string]string // username (email/mobile) -> password
	Branches   []branch.Branch
	Activities []activity.Activity
	Invoices   []invoice.Invoice
	Messages   []chat.Message
	Attendance map[attendance.Key]attendance.Record
	Staff      []staff.Staff
	Reports    []staff.Report
	Homework   []homework.Homework

	// next invoice number per branch+particulars; advisory, incremented
	// only on create (reproducing the documented backend race)
	InvoiceCounters map[string]int

	Calls  map[string]int
	nextID int
}

func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{
		Passwords:       make(map[string]string),
		Attendance:      make(map[attendance.Key]attendance.Record),
		InvoiceCounters: make(map[string]int),
		Calls:           make(map[string]int),
		nextID:          1000,
	}

	e := echo.New()
	e.Logger.SetLevel(log.OFF)
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b.mu.Lock()
			b.Calls[c.Request().URL.Path]++
			b.mu.Unlock()
			return next(c)
		}
	})

	e.POST("/login.php", b.login)
	e.POST("/forgot_password.php", b.ok)
	e.GET("/get_users.php", b.getUsers)
	e.POST("/edit_user.php", b.ok)
	e.POST("/update_profile.php", b.updateProfile)

	e.GET("/get_branches.php", b.getBranches)
	e.POST("/create_branch.php", b.ok)
	e.POST("/edit_branch.php", b.ok)
	e.POST("/delete_branch.php", b.ok)
	e.POST("/edit_camera_url.php", b.ok)

	e.GET("/get_activities.php", b.getActivities)
	e.POST("/delete_activity.php", b.deleteActivity)

	e.GET("/get_invoices.php", b.getInvoices)
	e.GET("/get_next_invoice_number.php", b.nextInvoiceNumber)
	e.POST("/create_invoice.php", b.createInvoice)
	e.POST("/assign_fee.php", b.ok)

	e.GET("/get_messages.php", b.getMessages)
	e.POST("/send_message.php", b.sendMessage)

	e.GET("/get_attendance_v2.php", b.getAttendance)
	e.POST("/mark_attendance_v2_debug.php", b.markAttendance)

	e.GET("/get_student_homework.php", b.getHomework)

	e.GET("/get_staff.php", b.getStaff)
	e.POST("/create_staff.php", b.ok)
	e.POST("/update_staff.php", b.ok)
	e.POST("/delete_staff.php", b.ok)
	e.GET("/get_staff_reports.php", b.getReports)
	e.POST("/teacher_onboarding.php", b.teacherOnboarding)

	b.app = e
	return b
}

func (b *FakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.app.ServeHTTP(w, r)
}

// CallCount returns how many requests path (e.g. "/assign_fee.php") saw.
func (b *FakeBackend) CallCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Calls[path]
}

func (b *FakeBackend) newID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	return fmt.Sprintf("%d", b.nextID)
}

// AddUser seeds a user with login credentials.
func (b *FakeBackend) AddUser(usr user.User, password string) user.User {
	if usr.ID == "" {
		usr.ID = b.newID()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Users = append(b.Users, usr)
	if password != "" {
		b.Passwords[usr.Email] = password
		if usr.Mobile != "" {
			b.Passwords[usr.Mobile] = password
		}
	}
	return usr
}

// handlers

func (b *FakeBackend) ok(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func fail(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, echo.Map{"success": false, "message": msg})
}

func (b *FakeBackend) login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return fail(c, "Invalid request")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	pwd, ok := b.Passwords[creds.Username]
	if !ok || pwd != creds.Password {
		return fail(c, "Invalid username or password")
	}
	for _, usr := range b.Users {
		if usr.Email == creds.Username || usr.Mobile == creds.Username {
			return c.JSON(http.StatusOK, echo.Map{
				"success": true,
				"user":    usr,
				"token":   "tok-" + usr.ID,
			})
		}
	}
	return fail(c, "Invalid username or password")
}

func (b *FakeBackend) getUsers(c echo.Context) error {
	role, branchName, id := c.QueryParam("role"), c.QueryParam("branch"), c.QueryParam("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]user.User, 0, len(b.Users))
	for _, usr := range b.Users {
		if role != "" && usr.Role != role {
			continue
		}
		if branchName != "" && usr.Branch != branchName {
			continue
		}
		if id != "" && usr.ID != id {
			continue
		}
		out = append(out, usr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": out})
}

func (b *FakeBackend) updateProfile(c echo.Context) error {
	if c.FormValue("user_id") == "" {
		return fail(c, "Missing user")
	}
	return b.ok(c)
}

func (b *FakeBackend) getBranches(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "branches": b.Branches})
}

func (b *FakeBackend) getActivities(c echo.Context) error {
	date := c.QueryParam("date")
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]activity.Activity, 0, len(b.Activities))
	for _, act := range b.Activities {
		if date != "" && act.CreatedAt != date {
			continue
		}
		out = append(out, act)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "activities": out})
}

func (b *FakeBackend) deleteActivity(c echo.Context) error {
	id := c.FormValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, act := range b.Activities {
		if act.ID == id {
			b.Activities = append(b.Activities[:i], b.Activities[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"success": true})
		}
	}
	return fail(c, "Activity not found")
}

func (b *FakeBackend) getInvoices(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "invoices": b.Invoices})
}

func (b *FakeBackend) nextInvoiceNumber(c echo.Context) error {
	key := c.QueryParam("branch") + "|" + c.QueryParam("particulars")
	b.mu.Lock()
	defer b.mu.Unlock()
	num := b.InvoiceCounters[key] + 1
	return c.JSON(http.StatusOK, echo.Map{
		"success":        true,
		"invoice_number": fmt.Sprintf("INV-%04d", num),
	})
}

func (b *FakeBackend) createInvoice(c echo.Context) error {
	var ni invoice.NewInvoice
	if err := c.Bind(&ni); err != nil {
		return fail(c, "Invalid request")
	}
	id := b.newID()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.InvoiceCounters[ni.Branch+"|"+ni.Particulars]++
	b.Invoices = append(b.Invoices, invoice.Invoice{
		ID:            id,
		InvoiceNumber: ni.InvoiceNumber,
		Branch:        ni.Branch,
		StudentID:     ni.StudentID,
		Particulars:   ni.Particulars,
		Amount:        ni.Amount,
		Mode:          ni.Mode,
		Date:          ni.Date,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": id})
}

func (b *FakeBackend) getMessages(c echo.Context) error {
	u1, u2 := c.QueryParam("user1_id"), c.QueryParam("user2_id")
	key := chat.ConversationKey(u1, u2)
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]chat.Message, 0, len(b.Messages))
	for _, msg := range b.Messages {
		if chat.ConversationKey(msg.SenderID, msg.ReceiverID) == key {
			out = append(out, msg)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "messages": out})
}

func (b *FakeBackend) sendMessage(c echo.Context) error {
	var body struct {
		SenderID   string `json:"sender_id"`
		ReceiverID string `json:"receiver_id"`
		Message    string `json:"message"`
	}
	if err := c.Bind(&body); err != nil || body.ReceiverID == "" {
		return fail(c, "Missing recipient")
	}
	id := b.newID()
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := chat.Message{
		ID:         id,
		SenderID:   body.SenderID,
		ReceiverID: body.ReceiverID,
		Body:       body.Message,
		CreatedAt:  fmt.Sprintf("2026-01-01 00:00:%02d", len(b.Messages)),
	}
	b.Messages = append(b.Messages, msg)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": msg.ID, "created_at": msg.CreatedAt})
}

func (b *FakeBackend) getAttendance(c echo.Context) error {
	studentID, date := c.QueryParam("student_id"), c.QueryParam("date")
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]attendance.Record, 0, len(b.Attendance))
	for _, rec := range b.Attendance {
		if studentID != "" && rec.StudentID != studentID {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		out = append(out, rec)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "attendance": out})
}

func (b *FakeBackend) markAttendance(c echo.Context) error {
	var rec attendance.Record
	if err := c.Bind(&rec); err != nil {
		return fail(c, "Invalid request")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Attendance[rec.Key()] = rec // upsert on (student_id, date)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (b *FakeBackend) getHomework(c echo.Context) error {
	studentID := c.QueryParam("student_id")
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]homework.Homework, 0, len(b.Homework))
	for _, hw := range b.Homework {
		if studentID == "" || hw.StudentID == studentID {
			out = append(out, hw)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "homework": out})
}

func (b *FakeBackend) getStaff(c echo.Context) error {
	branchName := c.QueryParam("branch")
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]staff.Staff, 0, len(b.Staff))
	for _, st := range b.Staff {
		if branchName == "" || st.Branch == branchName {
			out = append(out, st)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "staff": out})
}

func (b *FakeBackend) getReports(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "reports": b.Reports})
}

func (b *FakeBackend) teacherOnboarding(c echo.Context) error {
	teacherID := c.FormValue("teacher_id")
	if teacherID == "" {
		return fail(c, "Missing teacher")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, usr := range b.Users {
		if usr.ID == teacherID {
			b.Users[i].OnboardingComplete = true
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

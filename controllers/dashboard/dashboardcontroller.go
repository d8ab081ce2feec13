package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"BIOSECURE/client"
	"BIOSECURE/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgConnectionError  = "Could not connect to the database. Ensure the backend is running."
	MsgNoRecords        = "No records found in the database."
	MsgStatsUnavailable = "Unable to load statistics"
)

// Backend adalah REST API yang dipanggil dashboard.
type Backend interface {
	FetchStatistics(ctx context.Context) (models.StatisticsSnapshot, error)
	ListPersonnel(ctx context.Context) ([]models.Personnel, error)
	CreatePersonnel(ctx context.Context, in models.NewPersonnel) (models.Personnel, error)
}

type Controller struct {
	backend       Backend
	fallbackDelay time.Duration
	log           *zap.Logger
}

func New(backend Backend, fallbackDelay time.Duration, log *zap.Logger) *Controller {
	return &Controller{backend: backend, fallbackDelay: fallbackDelay, log: log}
}

type navItem struct {
	Tab    Tab
	Label  string
	Icon   string
	Active bool
}

type registrationForm struct {
	Name         string
	Department   string
	FaceEncoding string
	Errors       map[string]string
}

type notification struct {
	Title       string
	Description string
}

type shellData struct {
	Tab         Tab
	Nav         []navItem
	Title       string
	Subtitle    string
	Departments []models.Department
	Form        registrationForm
	Notice      *notification
}

func (d *Controller) shell(tab Tab, form registrationForm, notice *notification) shellData {
	nav := make([]navItem, 0, len(tabs))
	for _, t := range tabs {
		nav = append(nav, navItem{Tab: t.Tab, Label: t.Label, Icon: t.Icon, Active: t.Tab == tab})
	}
	info := tab.info()
	return shellData{
		Tab:         tab,
		Nav:         nav,
		Title:       info.Title,
		Subtitle:    info.Subtitle,
		Departments: models.Departments,
		Form:        form,
		Notice:      notice,
	}
}

// ShellHandler merender layout dan panel aktif. Data panel overview dan
// database dimuat browser lewat /panels/*, jadi shell sendiri tidak
// memanggil backend.
func (d *Controller) ShellHandler(c *gin.Context) {
	tab := ParseTab(c.Query("tab"))
	c.HTML(http.StatusOK, "shell", d.shell(tab, registrationForm{}, nil))
}

type statCard struct {
	Title string
	Value string
	Trend string
}

type statisticsPanel struct {
	Cards   []statCard
	Message string
}

// StatisticsPanelHandler melakukan tepat satu fetch statistik per request.
func (d *Controller) StatisticsPanelHandler(c *gin.Context) {
	snap, err := d.backend.FetchStatistics(c.Request.Context())
	if err != nil {
		d.log.Warn("Gagal mengambil statistik", zap.Error(err))
		c.HTML(http.StatusOK, "statistics_panel", statisticsPanel{Message: MsgStatsUnavailable})
		return
	}
	c.HTML(http.StatusOK, "statistics_panel", statisticsPanel{Cards: statisticsCards(snap)})
}

func statisticsCards(snap models.StatisticsSnapshot) []statCard {
	sign := ""
	if snap.MonthChangePercentage >= 0 {
		sign = "+"
	}
	return []statCard{
		{
			Title: "Total Personnel",
			Value: strconv.FormatInt(snap.TotalPersonnel, 10),
			Trend: sign + strconv.FormatFloat(snap.MonthChangePercentage, 'f', -1, 64) + "% this month",
		},
		{
			Title: "This Month",
			Value: strconv.FormatInt(snap.PersonnelThisMonth, 10),
			Trend: strconv.FormatInt(snap.PersonnelYesterday, 10) + " added yesterday",
		},
		{
			Title: "Database Status",
			Value: snap.DatabaseStatus,
			Trend: "MySQL v8.0",
		},
	}
}

type recordRow struct {
	ID         int64
	Name       string
	Department string
	Registered string
}

type personnelPanel struct {
	Error string
	Rows  []recordRow
	Empty string
}

// PersonnelPanelHandler dipanggil saat tab database dibuka dan saat tombol Refresh.
func (d *Controller) PersonnelPanelHandler(c *gin.Context) {
	records, err := d.backend.ListPersonnel(c.Request.Context())
	if err != nil {
		d.log.Warn("Gagal mengambil data personnel", zap.Error(err))
		c.HTML(http.StatusOK, "personnel_panel", personnelPanel{Error: MsgConnectionError, Empty: MsgNoRecords})
		return
	}

	panel := personnelPanel{Rows: make([]recordRow, 0, len(records))}
	for _, r := range records {
		panel.Rows = append(panel.Rows, recordRow{
			ID:         r.Id,
			Name:       r.Name,
			Department: models.DepartmentLabel(r.Department),
			Registered: formatDate(r.CreatedAt),
		})
	}
	if len(panel.Rows) == 0 {
		panel.Empty = MsgNoRecords
	}
	c.HTML(http.StatusOK, "personnel_panel", panel)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// RegisterHandler memproses form registrasi. Selama input lengkap, hasilnya
// selalu notifikasi sukses; kegagalan backend diganti simulasi sukses
// setelah fallbackDelay.
func (d *Controller) RegisterHandler(c *gin.Context) {
	form := registrationForm{
		Name:         strings.TrimSpace(c.PostForm("name")),
		Department:   c.PostForm("department"),
		FaceEncoding: strings.TrimSpace(c.PostForm("face_encoding")),
	}
	if errs := validateForm(form); len(errs) > 0 {
		form.Errors = errs
		c.HTML(http.StatusBadRequest, "shell", d.shell(TabRegister, form, nil))
		return
	}

	ctx := c.Request.Context()
	notice := &notification{
		Title:       "Success",
		Description: "Personnel record saved to database successfully.",
	}

	_, err := d.backend.CreatePersonnel(ctx, models.NewPersonnel{
		Name:         form.Name,
		Department:   form.Department,
		FaceEncoding: form.FaceEncoding,
	})
	var statusErr *client.StatusError
	switch {
	case err == nil:
	case errors.As(err, &statusErr):
		d.log.Info("Backend menolak data, simulasi sukses untuk demo", zap.Int("status", statusErr.Code))
		d.wait(ctx)
	default:
		d.log.Warn("Backend tidak bisa dihubungi, simulasi sukses untuk demo", zap.Error(err))
		d.wait(ctx)
		notice = &notification{
			Title:       "Success (Demo Mode)",
			Description: "Backend unreachable, but simulated success for demo.",
		}
	}

	c.HTML(http.StatusOK, "shell", d.shell(TabRegister, registrationForm{}, notice))
}

func validateForm(form registrationForm) map[string]string {
	errs := map[string]string{}
	if form.Name == "" {
		errs["name"] = "Full name is required."
	}
	if form.Department == "" {
		errs["department"] = "Select a department."
	} else if !models.IsValidDepartment(form.Department) {
		errs["department"] = "Unknown department."
	}
	if form.FaceEncoding == "" {
		errs["face_encoding"] = "Face encoding data is required."
	}
	return errs
}

func (d *Controller) wait(ctx context.Context) {
	if d.fallbackDelay <= 0 {
		return
	}
	t := time.NewTimer(d.fallbackDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

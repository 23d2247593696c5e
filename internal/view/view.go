// Package view reshapes backend DTOs into display-ready rows for the
// console. Mapping is purely presentational: it never recomputes values
// the backend owns, only formats and combines fields.
package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Electrocom-Solutions/erp-console/internal/api"
)

// ClientView is a client record shaped for the list table.
type ClientView struct {
	ID       int
	Name     string
	Contact  string
	Phone    string
	Location string
	GST      string
	Status   string
}

// NewClientView maps one backend record.
func NewClientView(r api.ClientRecord) ClientView {
	return ClientView{
		ID:       r.ID,
		Name:     r.Name,
		Contact:  r.ContactPerson,
		Phone:    r.Phone,
		Location: joinNonEmpty(", ", r.City, r.State),
		GST:      r.GSTNumber,
		Status:   r.Status,
	}
}

// ClientViews maps a results slice 1:1, preserving order.
func ClientViews(records []api.ClientRecord) []ClientView {
	views := make([]ClientView, len(records))
	for i, r := range records {
		views[i] = NewClientView(r)
	}
	return views
}

// AMCView is a maintenance contract shaped for the list table.
type AMCView struct {
	ID     int
	Client string
	Period string
	Amount string
	Visits string
	Status string
}

func NewAMCView(a api.AMC) AMCView {
	return AMCView{
		ID:     a.ID,
		Client: a.ClientName,
		Period: fmt.Sprintf("%s → %s", a.StartDate, a.EndDate),
		Amount: Money(a.Amount),
		Visits: fmt.Sprintf("%d/%d", a.VisitsCompleted, a.VisitsPlanned),
		Status: a.Status,
	}
}

func AMCViews(amcs []api.AMC) []AMCView {
	views := make([]AMCView, len(amcs))
	for i, a := range amcs {
		views[i] = NewAMCView(a)
	}
	return views
}

// TenderView is a tender shaped for the list table.
type TenderView struct {
	ID        int
	TenderNo  string
	Name      string
	Authority string
	EMD       string
	Deposits  string
	Status    string
}

func NewTenderView(t api.Tender) TenderView {
	return TenderView{
		ID:        t.ID,
		TenderNo:  t.TenderNo,
		Name:      t.Name,
		Authority: t.Authority,
		EMD:       Money(t.EMDAmount),
		Deposits:  depositSummary(t),
		Status:    t.Status,
	}
}

func TenderViews(tenders []api.Tender) []TenderView {
	views := make([]TenderView, len(tenders))
	for i, t := range tenders {
		views[i] = NewTenderView(t)
	}
	return views
}

// depositSummary renders the paid security deposits, e.g.
// "SD1 ₹50000 (DD 123456)" or "-" when none is recorded.
func depositSummary(t api.Tender) string {
	var parts []string
	if t.SecurityDeposit1 != nil {
		s := "SD1 " + Money(*t.SecurityDeposit1)
		if t.SecurityDeposit1DDNumber != nil {
			s += fmt.Sprintf(" (DD %s)", *t.SecurityDeposit1DDNumber)
		}
		parts = append(parts, s)
	}
	if t.SecurityDeposit2 != nil {
		s := "SD2 " + Money(*t.SecurityDeposit2)
		if t.SecurityDeposit2DDNumber != nil {
			s += fmt.Sprintf(" (DD %s)", *t.SecurityDeposit2DDNumber)
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// ProjectView is a project shaped for the list table.
type ProjectView struct {
	ID       int
	Name     string
	Client   string
	Stage    string
	Deadline string
	Value    string
}

func NewProjectView(p api.Project) ProjectView {
	return ProjectView{
		ID:       p.ID,
		Name:     p.Name,
		Client:   p.ClientName,
		Stage:    p.Stage,
		Deadline: p.Deadline,
		Value:    Money(p.Value),
	}
}

func ProjectViews(projects []api.Project) []ProjectView {
	views := make([]ProjectView, len(projects))
	for i, p := range projects {
		views[i] = NewProjectView(p)
	}
	return views
}

// ResourceView is a stock item shaped for the list table.
type ResourceView struct {
	ID       int
	Name     string
	Category string
	Stock    string
	Location string
	Low      bool
}

func NewResourceView(r api.Resource) ResourceView {
	return ResourceView{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Stock:    fmt.Sprintf("%d %s", r.Quantity, r.Unit),
		Location: r.Location,
		Low:      r.Quantity <= r.MinQuantity,
	}
}

func ResourceViews(resources []api.Resource) []ResourceView {
	views := make([]ResourceView, len(resources))
	for i, r := range resources {
		views[i] = NewResourceView(r)
	}
	return views
}

// PayrollView is a payroll record shaped for the list table.
type PayrollView struct {
	ID       int
	Employee string
	Period   string
	Net      string
	Status   string
}

func NewPayrollView(r api.PayrollRecord) PayrollView {
	return PayrollView{
		ID:       r.ID,
		Employee: r.EmployeeName,
		Period:   fmt.Sprintf("%02d/%d", r.Month, r.Year),
		Net:      Money(r.NetPay),
		Status:   r.Status,
	}
}

func PayrollViews(records []api.PayrollRecord) []PayrollView {
	views := make([]PayrollView, len(records))
	for i, r := range records {
		views[i] = NewPayrollView(r)
	}
	return views
}

// VideoView is a training video shaped for the list table.
type VideoView struct {
	ID    int
	Rank  int
	Title string
	Code  string // YouTube video id, extracted for compact display
}

func NewVideoView(v api.TrainingVideo) VideoView {
	return VideoView{
		ID:    v.ID,
		Rank:  v.Rank,
		Title: v.Title,
		Code:  YouTubeID(v.YouTubeURL),
	}
}

func VideoViews(videos []api.TrainingVideo) []VideoView {
	views := make([]VideoView, len(videos))
	for i, v := range videos {
		views[i] = NewVideoView(v)
	}
	return views
}

// YouTubeID extracts the video id from watch/shorts/youtu.be URLs, or
// returns the raw URL when it doesn't look like one.
func YouTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	switch {
	case strings.HasSuffix(u.Host, "youtu.be"):
		return strings.TrimPrefix(u.Path, "/")
	case strings.Contains(u.Host, "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
			return rest
		}
	}
	return raw
}

// Money formats an amount in rupees for table display.
func Money(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

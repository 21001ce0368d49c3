package app

import (
	"time"

	"tableflip.dev/listplan/pkg/state"
	"tableflip.dev/listplan/pkg/week"
)

// DayView is one planner day ready for display.
type DayView struct {
	Key    string    `json:"date"`
	Label  string    `json:"label"`
	Date   time.Time `json:"-"`
	Note   string    `json:"note"`
	Worked bool      `json:"worked"`
	Today  bool      `json:"today,omitempty"`
}

// WeekView is the planner week offset weeks away from the reference date.
type WeekView struct {
	Offset int       `json:"offset"`
	Label  string    `json:"label"`
	Range  string    `json:"range"`
	Monday string    `json:"monday"`
	Days   []DayView `json:"days"`
	Worked int       `json:"worked"`
}

// Week builds the planner view for the week offset weeks from ref.
func (s *Service) Week(ref time.Time, offset int) (WeekView, error) {
	days, err := s.Planner()
	if err != nil {
		return WeekView{}, err
	}
	return BuildWeek(days, ref, offset), nil
}

// BuildWeek lays out days for the week offset weeks from ref.
func BuildWeek(days state.Days, ref time.Time, offset int) WeekView {
	monday := week.MondayOfWeek(ref, offset)
	records := days.Week(monday)
	v := WeekView{
		Offset: offset,
		Label:  week.Label(offset),
		Range:  week.Range(monday),
		Monday: week.DateKey(monday),
		Days:   make([]DayView, 0, week.Length),
	}
	for i, date := range week.Days(monday) {
		rec := records[i]
		if rec.Worked {
			v.Worked++
		}
		v.Days = append(v.Days, DayView{
			Key:    week.DateKey(date),
			Label:  week.DayLabel(i, date),
			Date:   date,
			Note:   rec.Note,
			Worked: rec.Worked,
			Today:  week.IsSameDay(date, ref),
		})
	}
	return v
}

// ListSummary counts the items of one list.
type ListSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Open   int    `json:"open"`
	Done   int    `json:"done"`
}

// Summary is an overview of every list.
type Summary struct {
	Lists []ListSummary `json:"lists"`
	Open  int           `json:"open"`
	Done  int           `json:"done"`
}

// Summary counts open and done items per list.
func (s *Service) Summary() (Summary, error) {
	st, err := s.State()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(st), nil
}

// Summarize counts open and done items per list of st.
func Summarize(st *state.AppState) Summary {
	var out Summary
	for _, c := range st.Lists() {
		ls := ListSummary{ID: c.ID, Name: c.Name, Active: c.ID == st.ActiveCategoryID}
		for _, it := range c.Items {
			if it.Done {
				ls.Done++
			} else {
				ls.Open++
			}
		}
		out.Open += ls.Open
		out.Done += ls.Done
		out.Lists = append(out.Lists, ls)
	}
	return out
}

func canonical(key string) string {
	if k, ok := week.CanonicalKey(key); ok {
		return k
	}
	return key
}

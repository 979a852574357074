package tasks

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"effix/frontend/shared/pagetest"
	"effix/infrastructure/i18n"
	"effix/models"
)

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeCountsOverdueOpenTasksOnly(t *testing.T) {
	all := []models.Task{
		{Status: models.TaskCompleted, DueDate: at(2024, time.January, 1)},
		{Status: models.TaskTodo, DueDate: at(2024, time.January, 1)},
		{Status: models.TaskInProgress, DueDate: at(2024, time.March, 1)},
	}
	got := Summarize(all, at(2024, time.February, 1))
	want := Summary{Total: 3, Completed: 1, InProgress: 1, Overdue: 1, CompletionRate: 33}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
}

func TestCompletionRateRoundsHalfUp(t *testing.T) {
	done := models.Task{Status: models.TaskCompleted}
	open := models.Task{Status: models.TaskTodo}
	cases := []struct {
		all  []models.Task
		want int
	}{
		{[]models.Task{done, done, open}, 67},
		{[]models.Task{done, open}, 50},
		{[]models.Task{done, open, open, open, open, open, open, open}, 13},
		{[]models.Task{done}, 100},
	}
	for _, tc := range cases {
		if got := Summarize(tc.all, time.Time{}).CompletionRate; got != tc.want {
			t.Fatalf("CompletionRate(%d tasks) = %d, want %d", len(tc.all), got, tc.want)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil, time.Now()); got != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestTasksPageKPIsUseInjectedClock(t *testing.T) {
	db := pagetest.DB(t)
	now := func() time.Time { return at(2024, time.January, 18) }
	h := TasksPageQueryHandler(db, pagetest.Registry(Path), now)

	body := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/tasks", nil, i18n.English)).Body.String()
	if !strings.Contains(body, "20% completion rate") {
		t.Fatalf("expected completion rate note")
	}
	if !strings.Contains(body, `<p class="kpi-value">5</p>`) || strings.Contains(body, `<p class="kpi-value">05</p>`) {
		t.Fatalf("expected unpadded task total")
	}
	all, err := LoadTasks(context.Background(), db)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if s := Summarize(all, now()); s.Overdue != 2 {
		t.Fatalf("overdue = %d, want 2", s.Overdue)
	}
}

func TestTasksPageSearchesAssignee(t *testing.T) {
	db := pagetest.DB(t)
	h := TasksPageQueryHandler(db, pagetest.Registry(Path), time.Now)
	body := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/tasks?q=emily&status=Completed", nil, i18n.English)).Body.String()
	if !strings.Contains(body, "User Testing") || strings.Contains(body, "Security Audit") {
		t.Fatalf("assignee search returned wrong rows")
	}
	if !strings.Contains(body, `<span class="badge badge-success">Completed</span>`) {
		t.Fatalf("expected completed badge")
	}
}

func TestPriorityVariant(t *testing.T) {
	if PriorityVariant(models.PriorityHigh) != "danger" || PriorityVariant(models.PriorityLow) != "success" {
		t.Fatalf("unexpected priority variants")
	}
}

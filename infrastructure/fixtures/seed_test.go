package fixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"effix/infrastructure/sqlite"
	"effix/models"
)

func openSeededDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "fixtures.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestSeedWritesEveryFixture(t *testing.T) {
	db := openSeededDB(t)
	counts, err := Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	want := Counts{Leads: 4, Customers: 4, Expenses: 5, Invoices: 3, Projects: 4, Tasks: 5}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestSeedIsRepeatable(t *testing.T) {
	db := openSeededDB(t)
	ctx := context.Background()
	if _, err := Seed(ctx, db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if _, err := Seed(ctx, db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	customers, err := sqlite.SelectInFixtureOrder[models.Customer](ctx, db)
	if err != nil {
		t.Fatalf("select customers: %v", err)
	}
	if len(customers) != len(Customers()) {
		t.Fatalf("customers = %d, want %d", len(customers), len(Customers()))
	}
}

func TestSeedKeepsFixtureOrder(t *testing.T) {
	db := openSeededDB(t)
	ctx := context.Background()
	if _, err := Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tasks, err := sqlite.SelectInFixtureOrder[models.Task](ctx, db)
	if err != nil {
		t.Fatalf("select tasks: %v", err)
	}
	var got, want []string
	for _, task := range tasks {
		got = append(got, task.Title)
	}
	for _, task := range Tasks() {
		want = append(want, task.Title)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("task order mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedRoundTripsSlicesAndDates(t *testing.T) {
	db := openSeededDB(t)
	ctx := context.Background()
	if _, err := Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	invoices, err := sqlite.SelectInFixtureOrder[models.Invoice](ctx, db)
	if err != nil {
		t.Fatalf("select invoices: %v", err)
	}
	first := invoices[0]
	if diff := cmp.Diff([]string{"bug", "review"}, first.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if got := first.StartDate.Format("2006-01-02"); got != "2025-04-05" {
		t.Fatalf("start date = %s, want 2025-04-05", got)
	}
	if first.AmountCents != 123400 {
		t.Fatalf("amount = %d, want 123400", first.AmountCents)
	}
}

func TestOpenInMemorySeedsFixtures(t *testing.T) {
	ctx := context.Background()
	db, counts, err := Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if counts.Expenses != 5 {
		t.Fatalf("expenses = %d, want 5", counts.Expenses)
	}
	leads, err := sqlite.SelectInFixtureOrder[models.Lead](ctx, db)
	if err != nil {
		t.Fatalf("select leads: %v", err)
	}
	if len(leads) != 4 || leads[0].Name != "John Abshire" {
		t.Fatalf("leads = %+v", leads)
	}
}

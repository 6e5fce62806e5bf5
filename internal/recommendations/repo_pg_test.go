package recommendations

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGCompletedLoadsSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"rec_text"}).
		AddRow("Drikk mer vann").
		AddRow("Gå en tur før lunsj")
	mock.ExpectQuery("SELECT rec_text FROM completed_recommendations").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := NewPGRepo(db)
	set, err := repo.Completed(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("completed: %v", err)
	}
	if len(set) != 2 || !set.Has("Drikk mer vann") {
		t.Fatalf("unexpected set: %v", set)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGMarkCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO completed_recommendations").
		WithArgs("user-1", "Drikk mer vann").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM completed_recommendations").
		WithArgs("user-1", "Drikk mer vann").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPGRepo(db)
	ctx := context.Background()
	if err := repo.MarkCompleted(ctx, "user-1", "Drikk mer vann", true); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	if err := repo.MarkCompleted(ctx, "user-1", "Drikk mer vann", false); err != nil {
		t.Fatalf("mark undone: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

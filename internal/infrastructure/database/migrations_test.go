package database

import (
	"strings"
	"testing"
)

func TestMigrations_Embedded(t *testing.T) {
	migrations, err := Migrations().FindMigrations()
	if err != nil {
		t.Fatalf("find migrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Id != "0001_create_transcripts.sql" {
		t.Fatalf("unexpected order, first is %s", migrations[0].Id)
	}
	for _, m := range migrations {
		if len(m.Up) == 0 || len(m.Down) == 0 {
			t.Fatalf("migration %s must define up and down", m.Id)
		}
	}
	if !strings.Contains(migrations[1].Up[0], "analyses") {
		t.Fatalf("unexpected second migration %s", migrations[1].Id)
	}
}

package sqldb

import (
	"database/sql"
	"strings"
	"testing"
	"time"
)

func TestRebind(t *testing.T) {
	pg := &conn{dialect: Postgres}
	lite := &conn{dialect: SQLite}

	q := `UPDATE owners SET city = ? WHERE id = ?`
	if got := pg.rebind(q); got != `UPDATE owners SET city = $1 WHERE id = $2` {
		t.Fatalf("unexpected postgres query: %s", got)
	}
	if got := lite.rebind(q); got != q {
		t.Fatalf("sqlite query should be unchanged: %s", got)
	}
}

func TestParseDate_AcceptsDriverRepresentations(t *testing.T) {
	want := time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2020-05-15", "2020-05-15T00:00:00Z", "2020-05-15 00:00:00+00:00"} {
		if got := parseDate(sql.NullString{String: in, Valid: true}); !got.Equal(want) {
			t.Fatalf("parseDate(%q) = %v", in, got)
		}
	}
	if !parseDate(sql.NullString{}).IsZero() {
		t.Fatalf("NULL should parse to zero time")
	}
}

func TestLikePrefix_EscapesWildcards(t *testing.T) {
	if got := likePrefix(" Mc_Tav%ish "); got != `mc\_tav\%ish%` {
		t.Fatalf("unexpected pattern: %s", got)
	}
}

func TestSchema_PerDialectIDColumn(t *testing.T) {
	if !strings.Contains(Schema(Postgres), "SERIAL PRIMARY KEY") {
		t.Fatalf("postgres schema should use SERIAL")
	}
	if !strings.Contains(Schema(SQLite), "INTEGER PRIMARY KEY AUTOINCREMENT") {
		t.Fatalf("sqlite schema should use AUTOINCREMENT")
	}
}

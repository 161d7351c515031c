package db

import (
	"testing"

	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/pkg/errutil"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN("127.0.0.1", 3306, "root", "secret", "liaptong", "charset=utf8mb4")
	if dsn != "root:secret@tcp(127.0.0.1:3306)/liaptong?charset=utf8mb4" {
		t.Fatalf("dsn: %s", dsn)
	}
	if dsn := BuildDSN("db", 3306, "u", "p", "x", ""); dsn != "u:p@tcp(db:3306)/x" {
		t.Fatalf("dsn without args: %s", dsn)
	}
}

func TestDisabled(t *testing.T) {
	if Enabled() {
		t.Skip("database connected")
	}

	if err := InsertHistory(nil); err != errutil.ErrInvalidParameter {
		t.Fatalf("nil history: %v", err)
	}
	if err := InsertHistory(&model.History{}); !errutil.Is(err, errutil.ErrDBOperation) {
		t.Fatalf("insert without database: %v", err)
	}
	if _, err := QueryRoom(1); !errutil.Is(err, errutil.ErrDBOperation) {
		t.Fatalf("query without database: %v", err)
	}
	if RoomNumberExists("123456") {
		t.Fatal("no room exists without database")
	}
}

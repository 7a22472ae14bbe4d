package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("no database in dry run")

// offlinePool satisfies gorm's pool and transaction interfaces without a
// server, so transactional code paths can run in DryRun mode.
type offlinePool struct{}

func (offlinePool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errNoDatabase
}

func (offlinePool) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoDatabase
}

func (offlinePool) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoDatabase
}

func (offlinePool) QueryRowContext(context.Context, string, ...any) *sql.Row { return nil }

func (offlinePool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &offlineTx{}, nil
}

type offlineTx struct{ offlinePool }

func (offlineTx) Commit() error   { return nil }
func (offlineTx) Rollback() error { return nil }

// recordingDB returns a DryRun gorm handle and the SQL of every statement it
// builds, in order.
func recordingDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: offlinePool{}}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var statements []string
	record := func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", record))
	return db, &statements
}

func TestCalendarUpsert_SingleStatementKeyedOnVendorAndDate(t *testing.T) {
	db, statements := recordingDB(t)
	day := &models.VendorAvailability{
		VendorID:    uuid.New(),
		Date:        time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		IsAvailable: false,
		EventTitle:  "Garcia wedding",
	}

	require.NoError(t, NewCalendarRepo(db).Upsert(context.Background(), day))

	require.Len(t, *statements, 1)
	stmt := (*statements)[0]
	assert.True(t, strings.HasPrefix(stmt, `INSERT INTO "vendor_availability"`), stmt)
	assert.Contains(t, stmt, `ON CONFLICT ("vendor_id","date") DO UPDATE SET "is_available"="excluded"."is_available"`)
	assert.Contains(t, stmt, `"event_title"="excluded"."event_title"`)
	assert.Contains(t, stmt, `"updated_at"="excluded"."updated_at"`)
	assert.NotEqual(t, uuid.Nil, day.ID)
}

func TestSavedVendorSave_InsertIgnoresDuplicateThenReadsBack(t *testing.T) {
	db, statements := recordingDB(t)
	userID, vendorID := uuid.New(), uuid.New()

	_, err := NewSavedVendorRepo(db).Save(context.Background(), userID, vendorID)
	require.NoError(t, err)

	require.Len(t, *statements, 2)
	assert.True(t, strings.HasPrefix((*statements)[0], `INSERT INTO "saved_vendors"`), (*statements)[0])
	assert.Contains(t, (*statements)[0], `ON CONFLICT ("user_id","vendor_id") DO NOTHING`)
	assert.True(t, strings.HasPrefix((*statements)[1],
		`SELECT * FROM "saved_vendors" WHERE user_id = $1 AND vendor_id = $2`), (*statements)[1])
}

func TestProfileAttach_LocksUserBeforeWriting(t *testing.T) {
	db, statements := recordingDB(t)
	user := &models.User{ID: uuid.New(), Role: models.RoleVendor, FirstName: "Lu"}
	vendor := &models.Vendor{ID: uuid.New(), UserID: user.ID, BusinessName: "Luma Photography"}

	require.NoError(t, NewProfileRepo(db).Attach(context.Background(), user, vendor))

	got := *statements
	require.Len(t, got, 6)
	assert.True(t, strings.HasPrefix(got[0], `SELECT * FROM "users" WHERE id = $1`), got[0])
	assert.True(t, strings.HasSuffix(got[0], "FOR UPDATE"), got[0])
	assert.Contains(t, got[1], `SELECT count(*) FROM "couples" WHERE user_id = $1`)
	assert.Contains(t, got[2], `SELECT count(*) FROM "individuals" WHERE user_id = $1`)
	assert.Contains(t, got[3], `SELECT count(*) FROM "vendors" WHERE user_id = $1`)
	assert.True(t, strings.HasPrefix(got[4], `UPDATE "users" SET`), got[4])
	assert.Contains(t, got[4], `"role"=`)
	assert.True(t, strings.HasPrefix(got[5], `INSERT INTO "vendors"`), got[5])
}

func TestInquiryListByConsumer_ScopesToProfileColumn(t *testing.T) {
	tests := []struct {
		role   models.Role
		column string
	}{
		{models.RoleCouple, "couple_id"},
		{models.RoleIndividual, "individual_id"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			db, statements := recordingDB(t)
			ref := models.ConsumerRef{Role: tt.role, ProfileID: uuid.New()}

			_, err := NewInquiryRepo(db).ListByConsumer(context.Background(), ref)
			require.NoError(t, err)

			require.NotEmpty(t, *statements)
			stmt := (*statements)[0]
			assert.Equal(t, `SELECT * FROM "inquiries" WHERE `+tt.column+` = $1 ORDER BY created_at DESC`, stmt)
		})
	}
}

package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'member',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTeamTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		stripe_customer_id TEXT UNIQUE,
		stripe_subscription_id TEXT UNIQUE,
		stripe_product_id TEXT,
		plan_name TEXT,
		subscription_status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		team_id TEXT NOT NULL,
		role TEXT NOT NULL,
		display_rank INTEGER NOT NULL DEFAULT 0,
		joined_at DATETIME NOT NULL
	);`)
}

func createInvitationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invitations (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		invited_by TEXT NOT NULL,
		invited_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	);`)
}

func createActivityLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE activity_logs (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		user_id TEXT,
		action TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		ip_address TEXT
	);`)
}

func createBrandTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE brands (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		website_url TEXT NOT NULL,
		profile TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		brand_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price TEXT,
		image_url TEXT,
		external_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createGenerationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE generations (
		id TEXT PRIMARY KEY,
		brand_id TEXT NOT NULL,
		flow_id TEXT NOT NULL,
		variation_id TEXT NOT NULL,
		template_id TEXT NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		version INTEGER NOT NULL DEFAULT 1,
		language TEXT NOT NULL DEFAULT 'en',
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE generation_versions (
		id TEXT PRIMARY KEY,
		generation_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}

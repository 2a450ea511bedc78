// Package backup produces on-demand gzip-compressed SQL dumps of the CRM
// database, written to a backups/ directory beside the database file.
package backup

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Service struct {
	db     *sqlx.DB
	dbPath string
}

func NewService(db *sqlx.DB, dbPath string) *Service {
	return &Service{
		db:     db,
		dbPath: dbPath,
	}
}

// Result contains information about a completed backup
type Result struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

// Create dumps the database as SQL and writes it gzip-compressed next to the
// live database. VACUUM INTO gives a consistent snapshot to dump from even
// while requests keep writing.
func (s *Service) Create(ctx context.Context) (*Result, error) {
	backupDir := filepath.Join(filepath.Dir(s.dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15.04.05")
	filename := timestamp + "_saredump.sql.gz"
	backupPath := filepath.Join(backupDir, filename)

	// Random temp name so concurrent backup requests cannot collide.
	tempPath := filepath.Join(backupDir, "snap_"+uuid.NewString()+".db")
	defer os.Remove(tempPath)

	if _, err := s.db.ExecContext(ctx, `VACUUM INTO ?`, tempPath); err != nil {
		return nil, fmt.Errorf("vacuum into snapshot: %w", err)
	}

	snap, err := sqlx.Open("sqlite3", tempPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer snap.Close()

	dump, err := generateDump(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("generate dump: %w", err)
	}

	file, err := os.Create(backupPath)
	if err != nil {
		return nil, fmt.Errorf("create backup file: %w", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(dump)); err != nil {
		return nil, fmt.Errorf("write gzip data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("close gzip writer: %w", err)
	}

	info, err := os.Stat(backupPath)
	if err != nil {
		return nil, fmt.Errorf("stat backup file: %w", err)
	}

	return &Result{
		Filename: filename,
		Path:     backupPath,
		Size:     info.Size(),
	}, nil
}

type schemaObject struct {
	Type string `db:"type"`
	Name string `db:"name"`
	SQL  string `db:"sql"`
}

// generateDump writes schema objects first, then INSERT statements per table.
func generateDump(ctx context.Context, db *sqlx.DB) (string, error) {
	var sb strings.Builder

	sb.WriteString("-- SareeCRM Database Backup\n")
	sb.WriteString(fmt.Sprintf("-- Generated: %s\n", time.Now().Format(time.RFC3339)))
	sb.WriteString("BEGIN TRANSACTION;\n\n")

	var schemas []schemaObject
	err := db.SelectContext(ctx, &schemas, `
		SELECT type, name, sql
		FROM sqlite_master
		WHERE sql IS NOT NULL
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY
			CASE type
				WHEN 'table' THEN 1
				WHEN 'index' THEN 2
				WHEN 'trigger' THEN 3
				WHEN 'view' THEN 4
			END,
			name
	`)
	if err != nil {
		return "", fmt.Errorf("query schemas: %w", err)
	}

	for _, schema := range schemas {
		sb.WriteString(schema.SQL)
		sb.WriteString(";\n")
	}
	sb.WriteString("\n")

	for _, schema := range schemas {
		if schema.Type != "table" {
			continue
		}
		inserts, err := generateInserts(ctx, db, schema.Name)
		if err != nil {
			return "", fmt.Errorf("generate inserts for %s: %w", schema.Name, err)
		}
		if inserts != "" {
			sb.WriteString(inserts)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("COMMIT;\n")
	return sb.String(), nil
}

func generateInserts(ctx context.Context, db *sqlx.DB, table string) (string, error) {
	rows, err := db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return "", fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("get columns: %w", err)
	}
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("%q", col)
	}

	var sb strings.Builder
	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			return "", fmt.Errorf("scan row: %w", err)
		}

		values := make([]string, len(row))
		for i, v := range row {
			values[i] = formatValue(v)
		}

		sb.WriteString(fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s);\n",
			table,
			strings.Join(quoted, ", "),
			strings.Join(values, ", ")))
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate rows: %w", err)
	}

	return sb.String(), nil
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}

	switch val := v.(type) {
	case []byte:
		return "'" + escapeString(string(val)) + "'"
	case string:
		return "'" + escapeString(val) + "'"
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return "'" + escapeString(fmt.Sprintf("%v", val)) + "'"
	}
}

func escapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

package bootstrap

import (
	_ "embed"
	"fmt"
	"strings"

	"gbsorgapi/pkg/logger"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// SchemaStatements returns the DDL statements of the embedded schema, comments stripped.
func SchemaStatements() []string {
	var lines []string
	for _, line := range strings.Split(schemaSQL, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ApplySchema creates every table that does not exist yet.
func ApplySchema(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database is nil")
	}
	stmts := SchemaStatements()
	for i, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	logger.Infof("Schema applied: %d statements", len(stmts))
	return nil
}

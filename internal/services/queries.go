package services

import "fmt"

// Check queries. Table and column names are validated as identifiers when
// the rule document is loaded; they are interpolated, not bound.
const (
	queryNullCount   = "SELECT COUNT(*) AS null_count FROM %s WHERE %s IS NULL"
	queryUniqueCount = "SELECT COUNT(*) AS total_count, COUNT(DISTINCT %s) AS unique_count FROM %s"
	queryRowCount    = "SELECT COUNT(*) FROM %s"
)

func nullCountQuery(table, column string) string {
	return fmt.Sprintf(queryNullCount, table, column)
}

func uniqueCountQuery(table, column string) string {
	return fmt.Sprintf(queryUniqueCount, column, table)
}

func rowCountQuery(table string) string {
	return fmt.Sprintf(queryRowCount, table)
}

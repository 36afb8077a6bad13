package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/studentrecords/internal/app/models"
)

// Table names
const (
	studentsTable = "students"
	usersTable    = "users"
)

// newStatementBuilder returns a squirrel builder using PostgreSQL placeholders
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// existsQuery builds SELECT EXISTS (...) for a primary key lookup
func existsQuery(sb squirrel.StatementBuilderType, table string, id int64) (string, []interface{}, error) {
	return sb.Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
}

// updateFieldsQuery builds an UPDATE touching only the given columns
func updateFieldsQuery(sb squirrel.StatementBuilderType, table string, id int64, fields models.Fields) (string, []interface{}, error) {
	return sb.Update(table).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// deleteQuery builds a DELETE by primary key
func deleteQuery(sb squirrel.StatementBuilderType, table string, id int64) (string, []interface{}, error) {
	return sb.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// Package psqlbuilder обёртка над squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
// Избавляет репозитории от повторения PlaceholderFormat(squirrel.Dollar)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос с плейсхолдерами PostgreSQL
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT запрос с плейсхолдерами PostgreSQL
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE запрос с плейсхолдерами PostgreSQL
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE запрос с плейсхолдерами PostgreSQL
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

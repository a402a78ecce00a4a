// SPDX-License-Identifier: Apache-2.0

package store

import sq "github.com/Masterminds/squirrel"

// Query builders for the settings table. SQLite uses `?` placeholders, which
// is squirrel's default format.

func buildGetSettingQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildPutSettingQuery(key, value string) (string, []any, error) {
	return sq.Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteSettingQuery(key string) (string, []any, error) {
	return sq.Delete("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
}

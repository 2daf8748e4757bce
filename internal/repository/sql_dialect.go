package repository

import (
	"database/sql/driver"
	"fmt"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// sqliteLowerFunc sqlite 内置 lower/LIKE 只处理 ASCII，此函数按 Unicode 转小写
const sqliteLowerFunc = "feed_lower"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, sqliteLower)
}

func sqliteLower(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}

// likeColumnByDialect sqlite 下列值先经 feed_lower 转小写，搜索词同样需转小写
func likeColumnByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return column
	default:
		return sqliteLowerFunc + "(" + column + ")"
	}
}

// escapeLike 转义 LIKE 通配符，使搜索词按字面子串匹配
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// containsPattern 生成小写子串匹配模式
func containsPattern(term string) string {
	return "%" + escapeLike(strings.ToLower(term)) + "%"
}

// buildLikeCondition 构建多列 OR 的 LIKE 条件，并返回参数数量。
func buildLikeCondition(db *gorm.DB, columns []string) (string, int) {
	return buildLikeConditionByDialect(dbDialectName(db), columns)
}

func buildLikeConditionByDialect(dialect string, columns []string) (string, int) {
	parts := make([]string, 0, len(columns))
	operator := likeOperatorByDialect(dialect)
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf(`%s %s ? ESCAPE '\'`, likeColumnByDialect(dialect, trimmed), operator))
	}
	if len(parts) == 0 {
		return "", 0
	}
	return "(" + strings.Join(parts, " OR ") + ")", len(parts)
}

// repeatLikeArgs 生成重复的 LIKE 参数列表。
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}

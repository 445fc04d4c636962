package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spatialid/adjuststatus/internal/database"
)

// bindvar returns the n-th (1-based) placeholder for driver.
func bindvar(driver string, n int) string {
	if driver == database.DriverPgx {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func placeholders(driver string, count int) string {
	vars := make([]string, count)
	for i := range vars {
		vars[i] = bindvar(driver, i+1)
	}
	return strings.Join(vars, ", ")
}

// renderStatement substitutes args into query for log output. It is never
// sent to the database.
func renderStatement(query string, args []any) string {
	var sb strings.Builder
	next := 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '?' && next < len(args):
			sb.WriteString(literal(args[next]))
			next++
		case c == '$' && i+1 < len(query) && isDigit(query[i+1]):
			j := i + 1
			for j < len(query) && isDigit(query[j]) {
				j++
			}
			n, _ := strconv.Atoi(query[i+1 : j])
			if n < 1 || n > len(args) {
				sb.WriteString(query[i:j])
			} else {
				sb.WriteString(literal(args[n-1]))
			}
			i = j - 1
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case time.Time:
		return "'" + x.Format("2006-01-02 15:04:05.000000-07:00") + "'"
	case sql.NullTime:
		if !x.Valid {
			return "NULL"
		}
		return literal(x.Time)
	default:
		return fmt.Sprint(x)
	}
}

package app

import (
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const memoryDBPath = ":memory:"

// sqliteDSN builds a modernc.org/sqlite DSN for path with the connection
// pragmas every pooled connection needs.
func sqliteDSN(path string, busyTimeout time.Duration) string {
	path = strings.TrimSpace(path)
	if path == memoryDBPath {
		return path
	}

	base := path
	rawQuery := ""
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		base = path[:idx]
		rawQuery = path[idx+1:]
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path
	}

	pragmas := []string{
		"busy_timeout(" + strconv.FormatInt(busyTimeout.Milliseconds(), 10) + ")",
		"journal_mode(WAL)",
		"foreign_keys(1)",
	}
	existing := strings.Join(query["_pragma"], ",")
	for _, pragma := range pragmas {
		name := pragma[:strings.IndexByte(pragma, '(')]
		if strings.Contains(existing, name) {
			continue
		}
		query.Add("_pragma", pragma)
	}

	if !strings.HasPrefix(base, "file:") {
		base = "file:" + base
	}
	return base + "?" + query.Encode()
}

func isMemoryDB(path string) bool {
	path = strings.TrimSpace(path)
	return path == memoryDBPath || strings.Contains(path, "mode=memory")
}

func dbNameFromPath(path string) string {
	path = strings.TrimSpace(path)
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}
	path = strings.TrimPrefix(path, "file:")
	if path == "" || path == memoryDBPath {
		return "memory"
	}

	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

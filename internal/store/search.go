package store

import (
	"strings"
	"unicode/utf8"
)

const snippetRadius = 32

// SearchMessages performs a case-insensitive substring search on cached
// message bodies, newest first. convKey narrows the search to one
// conversation when non-empty.
func (db *DB) SearchMessages(query string, convKey string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	q := `SELECT ` + messageColumns + ` FROM messages WHERE body LIKE ? ESCAPE '\'`
	args := []any{"%" + escapeLike(query) + "%"}
	if convKey != "" {
		q += " AND conv_key = ?"
		args = append(args, convKey)
	}
	q += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Message: m, Snippet: snippet(m.Body, query)})
	}
	return results, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// snippet marks the first match with << >> and trims the body around it.
func snippet(body, query string) string {
	idx := strings.Index(strings.ToLower(body), strings.ToLower(query))
	end := idx + len(query)
	if idx < 0 || end > len(body) {
		return body
	}

	start := idx
	for n := 0; start > 0 && n < snippetRadius; n++ {
		_, size := utf8.DecodeLastRuneInString(body[:start])
		start -= size
	}
	stop := end
	for n := 0; stop < len(body) && n < snippetRadius; n++ {
		_, size := utf8.DecodeRuneInString(body[stop:])
		stop += size
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString("...")
	}
	b.WriteString(body[start:idx])
	b.WriteString("<<")
	b.WriteString(body[idx:end])
	b.WriteString(">>")
	b.WriteString(body[end:stop])
	if stop < len(body) {
		b.WriteString("...")
	}
	return b.String()
}

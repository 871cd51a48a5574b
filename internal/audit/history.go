package audit

import (
	"log"
	"time"

	"github.com/afmdw/asset-hub/internal/model"
)

// Append records one executed query. Recording is best-effort: insert
// failures are logged and swallowed so a broken history database never
// fails the query that produced the entry.
func (s *Store) Append(entry Entry) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO query_history (entry_id, query_type, query_params, created_date, results_count)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.EntryID,
		entry.QueryType,
		entry.Params,
		entry.CreatedDate.Format(model.TimestampLayout),
		entry.ResultCount,
	)

	if err != nil {
		log.Printf("Warning: failed to record query: %v", err)
	}

	return nil
}

// Recent returns the most recent entries, newest first, up to limit.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if !s.enabled || s.db == nil {
		return []Entry{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT entry_id, query_type, query_params, created_date, results_count
		FROM query_history
		ORDER BY created_date DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		log.Printf("Warning: failed to query history: %v", err)
		return []Entry{}, nil
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdStr string

		if err := rows.Scan(
			&entry.EntryID,
			&entry.QueryType,
			&entry.Params,
			&createdStr,
			&entry.ResultCount,
		); err != nil {
			log.Printf("Warning: failed to scan history row: %v", err)
			continue
		}

		entry.CreatedDate, err = time.Parse(model.TimestampLayout, createdStr)
		if err != nil {
			log.Printf("Warning: failed to parse timestamp: %v", err)
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Clear deletes the entire query history. This is the only way entries
// are ever removed.
func (s *Store) Clear() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM query_history"); err != nil {
		return err
	}

	// Reclaim space after bulk delete
	if _, err := s.db.Exec("VACUUM"); err != nil {
		log.Printf("Warning: failed to vacuum database: %v", err)
	}

	return nil
}

package sqlite

import (
	"database/sql"
	"fmt"

	"microscan/internal/model"
)

// ScanRepository implements repository.ScanRepository for SQLite.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new SQLite scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Insert adds a new scan record to the database.
func (r *ScanRepository) Insert(scan *model.Scan) (int64, error) {
	r.db.Lock()
	defer r.db.Unlock()

	result, err := r.db.Conn().Exec(`
		INSERT INTO scans (source, status, risk_score, total_count,
			min_size_nm, avg_size_nm, max_size_nm,
			min_count, avg_count, max_count, thumbnail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, scan.Source, scan.Status, scan.RiskScore, scan.TotalCount,
		scan.MinSizeNM, scan.AvgSizeNM, scan.MaxSizeNM,
		scan.MinCount, scan.AvgCount, scan.MaxCount, scan.Thumbnail)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}

	return result.LastInsertId()
}

// GetAll retrieves scans based on filter criteria, newest first.
func (r *ScanRepository) GetAll(filter *model.ScanFilter) ([]model.Scan, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	query := `
		SELECT id, created_at, source, status, risk_score, total_count,
			min_size_nm, avg_size_nm, max_size_nm,
			min_count, avg_count, max_count
		FROM scans
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// OFFSET is only valid after a LIMIT clause; -1 means unbounded.
		query += " LIMIT -1"
	}

	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Conn().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var scans []model.Scan
	for rows.Next() {
		var s model.Scan
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Source, &s.Status, &s.RiskScore, &s.TotalCount,
			&s.MinSizeNM, &s.AvgSizeNM, &s.MaxSizeNM,
			&s.MinCount, &s.AvgCount, &s.MaxCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}

	return scans, rows.Err()
}

// GetTotalCount returns the total count of scans matching the filter.
func (r *ScanRepository) GetTotalCount(filter *model.ScanFilter) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	query := `SELECT COUNT(*) FROM scans WHERE 1=1`
	args := []interface{}{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	var count int
	if err := r.db.Conn().QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}

	return count, nil
}

// GetThumbnail returns the stored thumbnail of one scan, nil when the scan
// does not exist.
func (r *ScanRepository) GetThumbnail(id int64) ([]byte, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	var thumbnail []byte
	err := r.db.Conn().QueryRow(`SELECT thumbnail FROM scans WHERE id = ?`, id).Scan(&thumbnail)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thumbnail: %w", err)
	}
	return thumbnail, nil
}

// Clear removes all scan records.
func (r *ScanRepository) Clear() error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, err := r.db.Conn().Exec(`DELETE FROM scans`); err != nil {
		return fmt.Errorf("failed to clear scans: %w", err)
	}
	return nil
}

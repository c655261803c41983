package repository

import "microscan/internal/model"

// ScanRepository persists the scan history.
type ScanRepository interface {
	Insert(scan *model.Scan) (int64, error)
	GetAll(filter *model.ScanFilter) ([]model.Scan, error)
	GetTotalCount(filter *model.ScanFilter) (int, error)
	GetThumbnail(id int64) ([]byte, error)
	Clear() error
}

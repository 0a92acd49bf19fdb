package specification

import "gorm.io/gorm"

// ByCancelToken filters appointments by their cancellation token
type ByCancelToken struct {
	Token string
}

func (s ByCancelToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cancel_token = ?", s.Token)
}

// ByStatus filters appointments by status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// BySourceName filters chunk embeddings by source document
type BySourceName struct {
	SourceName string
}

func (s BySourceName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_name = ?", s.SourceName)
}

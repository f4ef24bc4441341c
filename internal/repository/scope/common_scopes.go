package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func OrderByIDAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// OrderByTimestampAsc is the default ordering for chat messages.
func OrderByTimestampAsc(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC").Order("id ASC")
}

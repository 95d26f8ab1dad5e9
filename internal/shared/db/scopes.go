package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Questions, documents and customers carry an is_delete flag instead of a
// deleted_at column; default query paths must exclude flagged rows.
//
// Example usage:
//
//	db.Model(&QuestionModel{}).Scopes(db.NotDeleted()).Find(&results)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_delete = ?", 0)
	}
}

// NotDeletedWithAlias is a GORM scope that filters out soft-deleted records
// with a table alias. Use this when joining tables and need to specify which
// table's is_delete to check.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".is_delete = ?", 0)
	}
}

// Paginate applies offset/limit pagination for a 1-based page number.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

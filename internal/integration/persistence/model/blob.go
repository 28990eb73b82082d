// Package model defines database models for persistence layer.
package model

import "time"

// BlobModel represents the blobs table: one row per serialized collection.
type BlobModel struct {
	Key       string    `gorm:"column:key;type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BlobModel.
func (BlobModel) TableName() string {
	return "blobs"
}

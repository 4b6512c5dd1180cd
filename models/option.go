package models

import (
	"time"

	"gorm.io/datatypes"
)

// Option is a named JSON value in the site options table.
// Version is bumped on every write and guards read-modify-write cycles.
type Option struct {
	Name      string         `gorm:"column:option_name;primarykey;size:191" json:"name"`
	Value     datatypes.JSON `gorm:"column:option_value;not null" json:"value"`
	Version   int64          `gorm:"not null;default:0" json:"version"`
	Autoload  bool           `gorm:"not null;default:true" json:"autoload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Option model
func (Option) TableName() string {
	return "options"
}

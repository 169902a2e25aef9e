package specification

import "gorm.io/gorm"

type ByLabel struct {
	Label string
}

func (s ByLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("label = ?", s.Label)
}

type ByIsDefault struct {
	IsDefault bool
}

func (s ByIsDefault) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", s.IsDefault)
}

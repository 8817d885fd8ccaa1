package models

import "time"

// GbsGroup represents the gbs_group table.
// The term window is fixed at creation and bounds when the group is considered active.
type GbsGroup struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name" validate:"required,max=100"`
	VillageID uint      `gorm:"column:village_id" json:"village_id" validate:"required"`
	TermStart time.Time `gorm:"column:term_start;type:date" json:"term_start"`
	TermEnd   time.Time `gorm:"column:term_end;type:date" json:"term_end"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for GbsGroup model.
func (GbsGroup) TableName() string {
	return "gbs_group"
}

// Term returns the group's term as a closed range.
func (g GbsGroup) Term() TemporalRange {
	end := g.TermEnd
	return NewTemporalRange(g.TermStart, &end)
}

// IsActiveOn reports whether d falls inside the group's term.
func (g GbsGroup) IsActiveOn(d time.Time) bool {
	return g.Term().ContainsDate(d)
}

package model

import "github.com/ojlab/discussions/domain"

// Problem and Identity map platform-owned tables this service only reads.
// They are deliberately excluded from AutoMigrate.

type Problem struct {
	ID    int64  `gorm:"column:problem_id;primaryKey"`
	Alias string `gorm:"column:alias"`
	Title string `gorm:"column:title"`
}

func (Problem) TableName() string {
	return "Problems"
}

func (m *Problem) ToDomain() domain.Problem {
	return domain.Problem{
		ID:    m.ID,
		Alias: m.Alias,
		Title: m.Title,
	}
}

type Identity struct {
	ID       int64  `gorm:"column:identity_id;primaryKey"`
	Username string `gorm:"column:username"`
	Name     string `gorm:"column:name"`
}

func (Identity) TableName() string {
	return "Identities"
}

package storage

import "time"

// ProjectModel is the GORM model for the projects table
type ProjectModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	Path      string `gorm:"not null;uniqueIndex:idx_project_path"`
	SCMType   string `gorm:"not null;check:scm_type IN ('git','hg','svn')"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// BookmarkModel is the GORM model for the single row bookmark table
type BookmarkModel struct {
	Folder      string `gorm:"not null;default:''"`
	ID          uint   `gorm:"primaryKey"`
	ProjectName string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BookmarkModel) TableName() string { return "bookmarks" }

// bookmarkID is the id of the only bookmark row
const bookmarkID = 1

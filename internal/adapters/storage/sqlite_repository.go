package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workbench/internal/domain"
	"workbench/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.ProjectRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ProjectRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and creates when needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI and the CLI share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ProjectModel{}, &BookmarkModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens the state database inside a WORKBENCH_HOME directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ProjectReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.Project, error) {
	var model ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, name)
		}
		return nil, err
	}

	project := projectModelToDomain(model)
	return &project, nil
}

// List implements ProjectReader.List, ordered by name
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Project, error) {
	var models []ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]domain.Project, len(models))
	for i, m := range models {
		projects[i] = projectModelToDomain(m)
	}
	return projects, nil
}

// Add implements ProjectWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, project domain.Project) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&ProjectModel{}).
				Where("name = ? OR path = ?", project.Name, project.Path).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: %s", domain.ErrProjectExists, project.Name)
			}

			model := domainToProjectModel(project)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// Delete implements ProjectWriter.Delete. A bookmark pointing at the
// project is removed with it.
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("name = ?", name).Delete(&ProjectModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, name)
			}
			return tx.Where("project_name = ?", name).Delete(&BookmarkModel{}).Error
		})
	}, maxRetries)
}

// LoadBookmark implements BookmarkStore.LoadBookmark.
// It returns nil without error when nothing was saved yet.
func (r *SQLiteRepository) LoadBookmark(ctx context.Context) (*domain.Bookmark, error) {
	var model BookmarkModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", bookmarkID).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load bookmark: %w", err)
	}

	bookmark := bookmarkModelToDomain(model)
	return &bookmark, nil
}

// SaveBookmark implements BookmarkStore.SaveBookmark
func (r *SQLiteRepository) SaveBookmark(ctx context.Context, bookmark domain.Bookmark) error {
	model := BookmarkModel{
		Folder:      bookmark.Folder,
		ID:          bookmarkID,
		ProjectName: bookmark.Project,
	}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"folder", "project_name", "updated_at"}),
		}).Create(&model).Error
	}, maxRetries)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

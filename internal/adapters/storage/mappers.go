package storage

import (
	"workbench/internal/domain"
)

// projectModelToDomain converts a ProjectModel (GORM) to domain.Project
func projectModelToDomain(m ProjectModel) domain.Project {
	return domain.Project{
		Name:    m.Name,
		Path:    m.Path,
		SCMType: domain.SCMType(m.SCMType),
	}
}

// domainToProjectModel converts a domain.Project to ProjectModel (GORM)
func domainToProjectModel(p domain.Project) ProjectModel {
	return ProjectModel{
		Name:    p.Name,
		Path:    p.Path,
		SCMType: string(p.SCMType),
	}
}

func bookmarkModelToDomain(m BookmarkModel) domain.Bookmark {
	return domain.Bookmark{
		Folder:  m.Folder,
		Project: m.ProjectName,
	}
}

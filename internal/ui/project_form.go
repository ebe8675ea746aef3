package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/services"
)

// ProjectFormResult contains the result of the add project form
type ProjectFormResult struct {
	Cancelled bool
	Error     error
	Name      string
	Path      string
	Project   *domain.Project
	SCMType   string // "" means detect from the working copy
}

// ProjectForm is a Bubble Tea component registering a working copy
type ProjectForm struct {
	Completed      bool
	form           *huh.Form
	projectService *services.ProjectService
	result         ProjectFormResult
}

// NewProjectForm creates the add project form. defaultPath pre-fills the path field.
func NewProjectForm(projectService *services.ProjectService, existing []domain.Project, defaultPath string) *ProjectForm {
	pf := &ProjectForm{
		projectService: projectService,
		result:         ProjectFormResult{Path: defaultPath},
	}

	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	scmOptions := []huh.Option[string]{huh.NewOption("detect", "")}
	for _, scm := range domain.AllSCMTypes {
		scmOptions = append(scmOptions, huh.NewOption(string(scm), string(scm)))
	}

	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Working copy path").
				Value(&pf.result.Path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Project name").
				Description("Leave empty to use the folder name").
				Value(&pf.result.Name).
				Validate(func(s string) error {
					if names[strings.TrimSpace(s)] {
						return fmt.Errorf("project %s already exists", s)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("SCM").
				Options(scmOptions...).
				Value(&pf.result.SCMType),
		),
	)

	return pf
}

// Init implements tea.Model
func (pf *ProjectForm) Init() tea.Cmd {
	return pf.form.Init()
}

// Update implements tea.Model
func (pf *ProjectForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			pf.result.Cancelled = true
			pf.Completed = true
			return pf, nil
		}
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted {
		pf.Completed = true
		if err := pf.addProject(); err != nil {
			logging.Logger.Error("Failed to add project", "error", err)
			pf.result.Error = err
		}
		return pf, nil
	}

	return pf, cmd
}

// View implements tea.Model
func (pf *ProjectForm) View() string {
	if pf.form != nil {
		return pf.form.View()
	}
	return ""
}

// Result returns the form result
func (pf *ProjectForm) Result() ProjectFormResult {
	return pf.result
}

func (pf *ProjectForm) addProject() error {
	project, err := pf.projectService.Add(context.Background(), services.AddProjectParams{
		Name:    strings.TrimSpace(pf.result.Name),
		Path:    strings.TrimSpace(pf.result.Path),
		SCMType: pf.result.SCMType,
	})
	if err != nil {
		return err
	}
	pf.result.Project = project
	return nil
}

// defaultProjectPath suggests the current directory when it is a working copy
func defaultProjectPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		logging.Logger.Debug("Failed to get current working directory", "error", err)
		return ""
	}
	if _, err := services.DetectSCM(cwd); err != nil {
		return ""
	}
	return cwd
}

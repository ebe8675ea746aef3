package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/services"
)

// ProjectsCmd manages registered projects
type ProjectsCmd struct {
	Add  ProjectsAddCmd  `cmd:"add" help:"Register a working copy"`
	Del  ProjectsDelCmd  `cmd:"del" help:"Unregister a project"`
	List ProjectsListCmd `cmd:"list" help:"List registered projects" default:"1"`
}

// ProjectsListCmd lists all projects
type ProjectsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProjectsListCmd) Run(cli *CLI) error {
	projects, err := cli.Container.ProjectService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if p.Format == "json" {
		return printProjectsJSON(os.Stdout, projects)
	}
	return printProjectsTable(os.Stdout, projects)
}

type projectJSON struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SCM  string `json:"scm"`
}

func printProjectsJSON(w io.Writer, projects []domain.Project) error {
	out := make([]projectJSON, 0, len(projects))
	for _, pr := range projects {
		out = append(out, projectJSON{Name: pr.Name, Path: pr.Path, SCM: string(pr.SCMType)})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printProjectsTable(w io.Writer, projects []domain.Project) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCM\tPATH")
	for _, pr := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pr.Name, pr.SCMType, pr.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %d projects\n", len(projects))
	return nil
}

// ProjectsAddCmd registers a working copy
type ProjectsAddCmd struct {
	Path string `arg:"" help:"Path of the working copy root" type:"path"`
	Name string `help:"Project name (default: folder name)" short:"n"`
	SCM  string `help:"Backend type: git, hg or svn (default: detected)"`
}

// Run executes the add command
func (p *ProjectsAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Adding project", "path", p.Path, "name", p.Name, "scm", p.SCM)

	project, err := cli.Container.ProjectService.Add(context.Background(), services.AddProjectParams{
		Name:    p.Name,
		Path:    p.Path,
		SCMType: p.SCM,
	})
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	fmt.Printf("Added project '%s' (%s) at %s\n", project.Name, project.SCMType, project.Path)
	return nil
}

// ProjectsDelCmd unregisters a project
type ProjectsDelCmd struct {
	Name string `arg:"" help:"Project name"`
}

// Run executes the del command
func (p *ProjectsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.ProjectService.Delete(context.Background(), p.Name); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Printf("Deleted project '%s'\n", p.Name)
	return nil
}

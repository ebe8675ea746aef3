package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"workbench/internal/domain"
	"workbench/internal/services"
	"workbench/internal/viewmodel"
)

const statusTimeout = 30 * time.Second

// StatusCmd prints the entries of one project folder
type StatusCmd struct {
	Project string `arg:"" help:"Project name"`
	Folder  string `arg:"" optional:"" help:"Folder relative to the project root"`

	Filter      string `help:"Only show entries whose name contains this text" short:"f"`
	Format      string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Reverse     bool   `help:"Reverse the sort order" short:"r"`
	ShowIgnored bool   `help:"Include entries the SCM reports nothing for" short:"i"`
	Sort        string `help:"Sort column: state, name, date or type" enum:"state,name,date,type" default:"name"`
}

type statusJSON struct {
	Branch  string      `json:"branch,omitempty"`
	Entries []entryJSON `json:"entries"`
	Folder  string      `json:"folder"`
	Project string      `json:"project"`
}

type entryJSON struct {
	Date  string `json:"date"`
	IsNew bool   `json:"is_new"`
	Name  string `json:"name"`
	State string `json:"state"`
	Type  string `json:"type"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	project, err := cli.Container.ProjectService.Get(ctx, s.Project)
	if err != nil {
		return err
	}

	column, err := domain.ParseColumn(s.Sort)
	if err != nil {
		return err
	}

	rows, err := s.collect(ctx, cli.Container.SnapshotService, *project, column)
	if err != nil {
		return err
	}
	branch := cli.Container.SnapshotService.BranchName(ctx, *project)

	if s.Format == "json" {
		return s.printJSON(os.Stdout, branch, rows)
	}
	return s.printTable(os.Stdout, branch, rows)
}

// collect runs one refresh through the same table and filter layers as the TUI
func (s *StatusCmd) collect(ctx context.Context, svc *services.SnapshotService, project domain.Project, column domain.Column) ([]domain.Entry, error) {
	folder := strings.Trim(s.Folder, "/")

	table := viewmodel.NewTable()
	proxy := viewmodel.NewFilterProxy(table)
	proxy.SetFilterText(s.Filter)
	proxy.SetShowIgnored(s.ShowIgnored)
	proxy.SetSortOrder(viewmodel.SortOrder{Column: column, Descending: s.Reverse})

	epoch := table.SwitchContext(domain.ViewContext{Folder: folder, Project: project.Name})
	snapshot, err := svc.Gather(ctx, project, folder, epoch)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", project.Name, err)
	}
	if _, err := table.Apply(snapshot); err != nil {
		return nil, err
	}

	return proxy.Rows(), nil
}

func (s *StatusCmd) printJSON(w io.Writer, branch string, rows []domain.Entry) error {
	out := statusJSON{
		Branch:  branch,
		Entries: make([]entryJSON, 0, len(rows)),
		Folder:  strings.Trim(s.Folder, "/"),
		Project: s.Project,
	}
	for _, e := range rows {
		out.Entries = append(out.Entries, entryJSON{
			Date:  e.DisplayDate(),
			IsNew: e.IsNewInWorkingCopy(),
			Name:  e.Name,
			State: e.WorkingState(),
			Type:  e.TypeLabel(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func (s *StatusCmd) printTable(w io.Writer, branch string, rows []domain.Entry) error {
	location := domain.ViewContext{Folder: strings.Trim(s.Folder, "/"), Project: s.Project}
	if branch != "" {
		fmt.Fprintf(w, "%s [%s]\n\n", location, branch)
	} else {
		fmt.Fprintf(w, "%s\n\n", location)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tNAME\tDATE\tTYPE")
	for _, e := range rows {
		state := e.WorkingState()
		if state == "" {
			state = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", state, e.DisplayName(), e.DisplayDate(), e.TypeLabel())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %d entries\n", len(rows))
	return nil
}

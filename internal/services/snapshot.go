package services

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"workbench/internal/domain"
	"workbench/internal/logging"
	"workbench/internal/ports"
)

// SnapshotService samples a project folder and builds its Observed Snapshot
type SnapshotService struct {
	lister    ports.DirectoryLister
	providers ports.StatusProviderFactory
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(lister ports.DirectoryLister, providers ports.StatusProviderFactory) *SnapshotService {
	return &SnapshotService{
		lister:    lister,
		providers: providers,
	}
}

// Gather lists folder and queries the backend status of the project at the
// same time, then merges both by name.
// A failing source contributes nothing and is logged, so the only error
// returned is the context's.
func (s *SnapshotService) Gather(ctx context.Context, project domain.Project, folder string, epoch uint64) (domain.Snapshot, error) {
	var (
		listing  []domain.DirEntry
		statuses map[string]domain.StatusRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dir := filepath.Join(project.Path, filepath.FromSlash(folder))
		entries, err := s.lister.List(gctx, dir)
		if err != nil {
			logging.Logger.Warn("Directory listing failed", "project", project.Name, "folder", folder, "error", err)
			return nil
		}
		listing = entries
		return nil
	})

	g.Go(func() error {
		provider, err := s.providers.ProviderFor(project.SCMType)
		if err != nil {
			logging.Logger.Warn("No status provider", "project", project.Name, "scm", project.SCMType, "error", err)
			return nil
		}
		all, err := provider.StatusOf(gctx, project.Path)
		if err != nil {
			logging.Logger.Warn("Status query failed", "project", project.Name, "error", err)
			return nil
		}
		statuses = ChildStatuses(all, folder)
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	snapshot := domain.Snapshot{
		Context: domain.ViewContext{Project: project.Name, Folder: folder},
		Entries: BuildEntries(listing, statuses),
		Epoch:   epoch,
	}

	logging.Logger.Debug("Snapshot gathered",
		"context", snapshot.Context.String(),
		"epoch", epoch,
		"listed", len(listing),
		"statuses", len(statuses),
		"entries", len(snapshot.Entries))

	return snapshot, nil
}

// BranchName returns the project's current branch, "" when unknown
func (s *SnapshotService) BranchName(ctx context.Context, project domain.Project) string {
	provider, err := s.providers.ProviderFor(project.SCMType)
	if err != nil {
		return ""
	}
	return provider.BranchName(ctx, project.Path)
}

// ChildStatuses narrows a repository wide status map to the direct children
// of folder, keyed by child name
func ChildStatuses(statuses map[string]domain.StatusRecord, folder string) map[string]domain.StatusRecord {
	prefix := ""
	if folder != "" {
		prefix = strings.TrimSuffix(folder, "/") + "/"
	}

	children := make(map[string]domain.StatusRecord)
	for path, status := range statuses {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		name := path[len(prefix):]
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		children[name] = status
	}
	return children
}

// BuildEntries merges a listing and a status lookup into a name sorted
// snapshot. Names only the backend knows become entries without a stat.
func BuildEntries(listing []domain.DirEntry, statuses map[string]domain.StatusRecord) []domain.Entry {
	byName := make(map[string]*domain.Entry, len(listing)+len(statuses))

	for _, de := range listing {
		if de.Name == "" {
			continue
		}
		byName[de.Name] = &domain.Entry{
			Name: de.Name,
			Stat: &domain.DirStat{IsDir: de.IsDir, ModTime: de.ModTime},
		}
	}

	for name, status := range statuses {
		entry, ok := byName[name]
		if !ok {
			entry = &domain.Entry{Name: name}
			byName[name] = entry
		}
		entry.Status = status
	}

	entries := make([]domain.Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries
}

package scm

import (
	"fmt"

	"workbench/internal/domain"
	"workbench/internal/ports"
)

// Providers implements ports.StatusProviderFactory over a fixed set of backends
type Providers struct {
	byType map[domain.SCMType]ports.StatusProvider
}

// Verify interface compliance at compile time
var _ ports.StatusProviderFactory = (*Providers)(nil)

// NewProviders creates a factory serving git, hg and svn
func NewProviders(git, hg, svn ports.StatusProvider) *Providers {
	return &Providers{byType: map[domain.SCMType]ports.StatusProvider{
		domain.SCMGit: git,
		domain.SCMHg:  hg,
		domain.SCMSvn: svn,
	}}
}

// ProviderFor returns the provider registered for scm
func (p *Providers) ProviderFor(scm domain.SCMType) (ports.StatusProvider, error) {
	provider, ok := p.byType[scm]
	if !ok || provider == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSCM, scm)
	}
	return provider, nil
}

package scm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbench/internal/domain"
	portsmocks "workbench/internal/ports/mocks"
)

func TestProviderFor(t *testing.T) {
	git := portsmocks.NewMockStatusProvider(t)
	hg := portsmocks.NewMockStatusProvider(t)
	providers := NewProviders(git, hg, nil)

	got, err := providers.ProviderFor(domain.SCMGit)
	require.NoError(t, err)
	assert.Same(t, git, got)

	got, err = providers.ProviderFor(domain.SCMHg)
	require.NoError(t, err)
	assert.Same(t, hg, got)

	_, err = providers.ProviderFor(domain.SCMSvn)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSCM)

	_, err = providers.ProviderFor("cvs")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSCM)
}

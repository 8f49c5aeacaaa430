package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/soonpage/internal/domain"
)

func TestClassifyDomains_DoesNotNeedAnalytics(t *testing.T) {
	cfg := domain.DefaultConfig()
	loader := &fakeLoader{
		kind:    domain.SourceList,
		domains: []domain.Domain{"webdev-now.com", "ankh-morpork.org", "randomnewproject.io"},
	}

	plans, err := NewClassifyDomains(loader).Execute(cfg)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, domain.CategoryDev, plans[0].Category)
	assert.Equal(t, domain.CategoryDiscworld, plans[1].Category)
	assert.Equal(t, domain.CategoryGeneric, plans[2].Category)
	assert.Equal(t, "Ankh Morpork", plans[1].DisplayName)
}

func TestClassifyDomains_LoaderError(t *testing.T) {
	loader := &fakeLoader{err: domain.MissingConfig("test.load", "DOMAIN")}

	_, err := NewClassifyDomains(loader).Execute(domain.DefaultConfig())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMissingConfig))
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio-backend/internal/models"
)

func TestLookupComponent(t *testing.T) {
	c, ok := LookupComponent("task")
	assert.True(t, ok)
	assert.Equal(t, "Task", c.Name)
	assert.True(t, c.Required)

	_, ok = LookupComponent("does-not-exist")
	assert.False(t, ok)
}

func TestComponentIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Components() {
		assert.False(t, seen[c.ID], "duplicate component id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestSingleSelectComponentsHaveOptions(t *testing.T) {
	for _, c := range Components() {
		if c.InputType == models.InputTypeSingleSelect {
			assert.NotEmpty(t, c.Options, "single-select component %s has no options", c.ID)
		} else {
			assert.Empty(t, c.Options, "component %s should not carry options", c.ID)
		}
	}
}

func TestPlatformTemplatesReferenceKnownComponents(t *testing.T) {
	for _, p := range Platforms() {
		for _, tpl := range p.Templates {
			assert.NotEmpty(t, tpl.Components)
			for _, id := range tpl.Components {
				_, ok := LookupComponent(id)
				assert.True(t, ok, "platform %s template %s references unknown component %s", p.ID, tpl.ID, id)
			}
		}
	}
}

func TestLookupPlatformTemplate(t *testing.T) {
	tpl, ok := LookupPlatformTemplate("anthropic", "document-qa")
	assert.True(t, ok)
	assert.Equal(t, []string{"context", "task", "constraints"}, tpl.Components)

	_, ok = LookupPlatformTemplate("anthropic", "missing")
	assert.False(t, ok)
	_, ok = LookupPlatformTemplate("missing", "general")
	assert.False(t, ok)
}

func TestUseCaseRecommendedPlatformsExist(t *testing.T) {
	for _, uc := range UseCases() {
		_, ok := LookupPlatform(uc.Platform)
		assert.True(t, ok, "use case %s recommends unknown platform %s", uc.ID, uc.Platform)
	}
}

func TestLookupUseCase(t *testing.T) {
	uc, ok := LookupUseCase("blog-post")
	assert.True(t, ok)
	assert.Equal(t, "openai", uc.Platform)

	_, ok = LookupUseCase("missing")
	assert.False(t, ok)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryBranch(t *testing.T) {
	cases := map[string]Branch{
		"Femenil A":    BranchFemenil,
		"varonil-b":    BranchVaronil,
		"MIXTO":        BranchMixto,
		"teens sub-16": BranchTeens,
		"Veteranos":    BranchUnknown,
		"":             BranchUnknown,
		"a femenil":    BranchUnknown,
	}
	for category, want := range cases {
		assert.Equal(t, want, CategoryBranch(category), category)
	}
}

func TestRequiresCoordinatorApproval(t *testing.T) {
	assert.True(t, RequiresCoordinatorApproval(strPtr("Varonil A"), strPtr("varonil B")))
	assert.False(t, RequiresCoordinatorApproval(strPtr("Varonil A"), strPtr("Mixto")))
	assert.True(t, RequiresCoordinatorApproval(strPtr("Veteranos"), strPtr("Libre")))
	assert.False(t, RequiresCoordinatorApproval(nil, strPtr("Mixto")))
	assert.False(t, RequiresCoordinatorApproval(strPtr("Mixto"), nil))
	assert.False(t, RequiresCoordinatorApproval(strPtr(""), strPtr("")))
}

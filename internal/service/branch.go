package service

import "strings"

// Branch is the league division a team category belongs to
type Branch string

const (
	BranchFemenil Branch = "femenil"
	BranchVaronil Branch = "varonil"
	BranchMixto   Branch = "mixto"
	BranchTeens   Branch = "teens"
	BranchUnknown Branch = "unknown"
)

var knownBranches = []Branch{BranchFemenil, BranchVaronil, BranchMixto, BranchTeens}

// CategoryBranch classifies a category by its lower-cased prefix
func CategoryBranch(category string) Branch {
	c := strings.ToLower(category)
	for _, b := range knownBranches {
		if strings.HasPrefix(c, string(b)) {
			return b
		}
	}
	return BranchUnknown
}

// RequiresCoordinatorApproval reports whether a transfer between the two categories needs
// the league coordinator. Both categories must be present; two unknown branches still match.
func RequiresCoordinatorApproval(fromCategory, toCategory *string) bool {
	if fromCategory == nil || toCategory == nil || *fromCategory == "" || *toCategory == "" {
		return false
	}
	return CategoryBranch(*fromCategory) == CategoryBranch(*toCategory)
}

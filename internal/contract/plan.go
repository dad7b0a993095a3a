// Package contract defines the response shapes exchanged between the
// service layer and the CLI renderers.
package contract

import (
	"github.com/plusplan/plusplan/internal/allocator"
	"github.com/plusplan/plusplan/internal/domain"
	"github.com/plusplan/plusplan/internal/grant"
	"github.com/plusplan/plusplan/internal/requirements"
)

// Budget source values for BudgetPlanResponse.
const (
	BudgetSourceGrant    = "computed-grant"
	BudgetSourceOverride = "override"
)

// BudgetPlanResponse is the full planning pipeline output for one project:
// the unit-cost grant estimate, the category allocation, and the logistical
// requirements report.
type BudgetPlanResponse struct {
	Project      *domain.Project
	Grant        *grant.Output
	Allocation   *allocator.Allocation
	Requirements *requirements.Result

	// BudgetSource records whether the allocated total came from the
	// computed grant or from a coordinator-entered override.
	BudgetSource string
}

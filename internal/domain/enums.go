package domain

type ProjectStatus string

const (
	ProjectDraft    ProjectStatus = "draft"
	ProjectActive   ProjectStatus = "active"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

// BudgetCategory is one of the nine fixed spending categories.
type BudgetCategory string

const (
	CategoryTravel        BudgetCategory = "travel"
	CategoryAccommodation BudgetCategory = "accommodation"
	CategoryFood          BudgetCategory = "food"
	CategoryActivities    BudgetCategory = "activities"
	CategoryStaffing      BudgetCategory = "staffing"
	CategoryInsurance     BudgetCategory = "insurance"
	CategoryPermits       BudgetCategory = "permits"
	CategoryApplication   BudgetCategory = "application"
	CategoryContingency   BudgetCategory = "contingency"
)

// BudgetCategories lists all categories in their canonical display order.
var BudgetCategories = []BudgetCategory{
	CategoryTravel,
	CategoryAccommodation,
	CategoryFood,
	CategoryActivities,
	CategoryStaffing,
	CategoryInsurance,
	CategoryPermits,
	CategoryApplication,
	CategoryContingency,
}

// ValidBudgetCategories is the canonical set of accepted category strings.
var ValidBudgetCategories = map[string]bool{
	"travel": true, "accommodation": true, "food": true,
	"activities": true, "staffing": true, "insurance": true,
	"permits": true, "application": true, "contingency": true,
}

// ActivityType tags a program activity. Workshop-style tags drive the budget
// allocator; public_event, cooking_workshop, and the outdoor flag drive the
// permits analysis.
type ActivityType string

const (
	ActivityWorkshop        ActivityType = "workshop"
	ActivityCookingWorkshop ActivityType = "cooking_workshop"
	ActivityPublicEvent     ActivityType = "public_event"
	ActivityExcursion       ActivityType = "excursion"
	ActivitySports          ActivityType = "sports"
	ActivityDiscussion      ActivityType = "discussion"
	ActivityPresentation    ActivityType = "presentation"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"workshop": true, "cooking_workshop": true, "public_event": true,
	"excursion": true, "sports": true, "discussion": true,
	"presentation": true,
}

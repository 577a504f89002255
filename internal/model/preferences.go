package model

type ViewMode string

const (
	ViewKanban ViewMode = "kanban"
	ViewList   ViewMode = "list"
)

func (v ViewMode) Valid() bool {
	return v == ViewKanban || v == ViewList
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByTitle     SortField = "title"
	SortByPriority  SortField = "priority"
	SortByDueDate   SortField = "dueDate"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByTitle, SortByPriority, SortByDueDate:
		return true
	}
	return false
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// FilterAll disables the priority or category predicate of Filters.
const FilterAll = "all"

type Filters struct {
	SearchTerm string `json:"searchTerm"`
	Priority   string `json:"priority"`
	Category   string `json:"category"`
}

// Valid reports whether Priority is empty, FilterAll or a known priority.
// Category is free text and always valid.
func (f Filters) Valid() bool {
	return f.Priority == "" || f.Priority == FilterAll || Priority(f.Priority).Valid()
}

// DefaultFilters matches every task.
func DefaultFilters() Filters {
	return Filters{Priority: FilterAll, Category: FilterAll}
}

// Preferences is the per-session UI state kept next to the task collection.
type Preferences struct {
	Theme     Theme     `json:"theme"`
	ViewMode  ViewMode  `json:"viewMode"`
	Filters   Filters   `json:"filters"`
	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:     ThemeLight,
		ViewMode:  ViewKanban,
		Filters:   DefaultFilters(),
		SortBy:    SortByCreatedAt,
		SortOrder: OrderDesc,
	}
}

package model

// Board partitions tasks into columns keyed by status. Order inside a column is
// significant, there is no order across columns.
type Board map[Status][]Task

// Location addresses a slot inside a column.
type Location struct {
	Column Status `json:"column"`
	Index  int    `json:"index"`
}

// Move describes a drag-and-drop gesture. A nil Destination means the task was
// dropped outside any column.
type Move struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
}

// IDs returns the task ids of every column in kanban order.
func (b Board) IDs() []string {
	var ids []string
	for _, status := range AllStatuses() {
		for _, t := range b[status] {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

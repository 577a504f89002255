package model

// Column describes one kanban column as presented to clients.
type Column struct {
	ID          Status `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// KanbanColumns lists the board columns in display order.
var KanbanColumns = []Column{
	{ID: StatusTodo, Title: "To Do", Description: "Tasks that have not been started"},
	{ID: StatusInProgress, Title: "In Progress", Description: "Tasks being worked on"},
	{ID: StatusDone, Title: "Done", Description: "Finished tasks"},
}

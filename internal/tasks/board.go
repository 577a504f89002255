package tasks

import (
	"slices"

	"taskflow/internal/model"
)

// GroupByStatus partitions tasks into a board with every column present. Tasks
// keep their collection order inside a column. Tasks with an unknown status are
// left out.
func GroupByStatus(tasks []model.Task) model.Board {
	board := make(model.Board, len(model.AllStatuses()))
	for _, status := range model.AllStatuses() {
		board[status] = []model.Task{}
	}
	for _, t := range tasks {
		if col, ok := board[t.Status]; ok {
			board[t.Status] = append(col, t)
		}
	}
	return board
}

// Flatten concatenates the columns of board in kanban order.
func Flatten(board model.Board) []model.Task {
	out := []model.Task{}
	for _, status := range model.AllStatuses() {
		out = append(out, board[status]...)
	}
	return out
}

// ApplyMove performs a column-relative drag-and-drop and returns the new board.
// The moved task takes the status of its destination column. Columns the move
// does not touch are shared with the input, touched columns are fresh slices.
//
// The input board is returned as is when the drop has no destination, the
// source slot does not exist, the destination is not a known column or the
// task would land back in its own slot. A destination index past the end of
// the column appends.
func ApplyMove(board model.Board, move model.Move) model.Board {
	next, _ := applyMove(board, move)
	return next
}

func applyMove(board model.Board, move model.Move) (model.Board, bool) {
	if move.Destination == nil {
		return board, false
	}
	src, dst := move.Source, *move.Destination
	if !src.Column.Valid() || !dst.Column.Valid() {
		return board, false
	}
	source := board[src.Column]
	if src.Index < 0 || src.Index >= len(source) {
		return board, false
	}
	if src.Column == dst.Column && max(0, min(dst.Index, len(source)-1)) == src.Index {
		return board, false
	}

	next := make(model.Board, len(board))
	for status, col := range board {
		next[status] = col
	}

	moved := source[src.Index]
	remaining := slices.Delete(slices.Clone(source), src.Index, src.Index+1)

	if src.Column == dst.Column {
		next[src.Column] = insertAt(remaining, dst.Index, moved)
		return next, true
	}

	moved.Status = dst.Column
	next[src.Column] = remaining
	next[dst.Column] = insertAt(slices.Clone(board[dst.Column]), dst.Index, moved)
	return next, true
}

func insertAt(col []model.Task, index int, t model.Task) []model.Task {
	index = max(0, min(index, len(col)))
	return slices.Insert(col, index, t)
}

// MoveTask applies a column-relative move to a flat collection. After a move
// the collection is ordered column by column, see Flatten. When the move is a
// no-op tasks is returned unchanged.
func MoveTask(tasks []model.Task, move model.Move) []model.Task {
	board, ok := applyMove(GroupByStatus(tasks), move)
	if !ok {
		return tasks
	}
	return Flatten(board)
}

// DropOnStatus is the flat-list drop: the task with the given id takes the new
// status and nothing else changes, collection order included. tasks is
// returned unchanged when the id is unknown, the status is invalid or already
// the task's status.
func DropOnStatus(tasks []model.Task, id string, status model.Status) []model.Task {
	if !status.Valid() {
		return tasks
	}
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 || tasks[i].Status == status {
		return tasks
	}
	out := slices.Clone(tasks)
	out[i].Status = status
	return out
}

// Locate finds the column and index of the task with the given id.
func Locate(board model.Board, id string) (model.Location, bool) {
	for _, status := range model.AllStatuses() {
		for i, t := range board[status] {
			if t.ID == id {
				return model.Location{Column: status, Index: i}, true
			}
		}
	}
	return model.Location{}, false
}

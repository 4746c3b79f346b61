package services

import (
	"time"

	"github.com/chronoplan/chrono/internal/scheduling/domain"
)

// taskQueue is a double-ended queue of owned task values. Split remainders
// go back to the front so a fragmented task keeps its rank.
type taskQueue struct {
	items []domain.SchedulableTask
}

func newTaskQueue(tasks []domain.SchedulableTask) *taskQueue {
	items := make([]domain.SchedulableTask, len(tasks))
	copy(items, tasks)
	return &taskQueue{items: items}
}

func (q *taskQueue) len() int { return len(q.items) }

func (q *taskQueue) popFront() domain.SchedulableTask {
	t := q.items[0]
	q.items = q.items[1:]
	return t
}

func (q *taskQueue) pushFront(t domain.SchedulableTask) {
	q.items = append([]domain.SchedulableTask{t}, q.items...)
}

// firstFitting returns the index of the first queued task fitting the given
// minutes, or -1.
func (q *taskQueue) firstFitting(minutes int) int {
	for i, t := range q.items {
		if t.FitsWithin(minutes) {
			return i
		}
	}
	return -1
}

func (q *taskQueue) removeAt(i int) domain.SchedulableTask {
	t := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)
	return t
}

func (q *taskQueue) drain() []domain.SchedulableTask {
	rest := q.items
	q.items = nil
	return rest
}

// PackTasks walks the free slots in chronological order, consuming ranked
// tasks greedily. It returns the emitted blocks and the tasks (or split
// remainders) that found no room.
//
// With splitting enabled, an over-long task fills the rest of the slot and
// its remainder is re-queued at the head. With splitting disabled, the packer
// keeps the over-long task at the head and opportunistically places the first
// lower-ranked task that fits; if none does, the slot is abandoned.
func PackTasks(ranked []domain.SchedulableTask, available domain.AvailableSlots, allowSplitting bool) ([]domain.ScheduleBlock, []domain.SchedulableTask) {
	queue := newTaskQueue(ranked)
	var blocks []domain.ScheduleBlock

	for _, slot := range available.Slots {
		blocks = append(blocks, fillSlot(slot, queue, allowSplitting)...)
	}

	return blocks, queue.drain()
}

func fillSlot(slot domain.TimeSlot, queue *taskQueue, allowSplitting bool) []domain.ScheduleBlock {
	cursor := slot.Start
	remaining := slot.Minutes()
	var blocks []domain.ScheduleBlock

	for remaining > 0 && queue.len() > 0 {
		task := queue.popFront()

		if !task.FitsWithin(remaining) {
			if allowSplitting {
				remainder := task
				remainder.DurationMinutes = task.DurationMinutes - remaining
				task.DurationMinutes = remaining
				queue.pushFront(remainder)
			} else {
				idx := queue.firstFitting(remaining)
				if idx < 0 {
					queue.pushFront(task)
					break
				}
				fitting := queue.removeAt(idx)
				queue.pushFront(task)
				task = fitting
			}
		}

		block := blockFor(task, cursor)
		cursor = block.End
		remaining -= task.DurationMinutes
		blocks = append(blocks, block)
	}

	return blocks
}

func blockFor(task domain.SchedulableTask, start time.Time) domain.ScheduleBlock {
	return domain.ScheduleBlock{
		TaskID:      task.ID,
		Start:       start,
		End:         start.Add(time.Duration(task.DurationMinutes) * time.Minute),
		Source:      domain.SourceTask,
		Title:       task.Title,
		Description: task.Description,
	}
}

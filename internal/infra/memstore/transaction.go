package memstore

import (
	"estate-booking/internal/usecase/shared"
)

type write struct {
	value   any
	deleted bool
}

type transaction struct {
	store  *Store
	reads  map[docKey]uint64
	writes map[docKey]write
	order  []docKey
}

func newTransaction(store *Store) *transaction {
	return &transaction{
		store:  store,
		reads:  make(map[docKey]uint64),
		writes: make(map[docKey]write),
	}
}

// get sees the transaction's own staged writes first.
func (t *transaction) get(key docKey) (any, bool) {
	if w, ok := t.writes[key]; ok {
		if w.deleted {
			return nil, false
		}
		return w.value, true
	}
	value, version := t.store.read(key)
	if _, seen := t.reads[key]; !seen {
		t.reads[key] = version
	}
	return value, version != 0
}

func (t *transaction) put(key docKey, value any) {
	t.stage(key, write{value: value})
}

func (t *transaction) del(key docKey) {
	t.stage(key, write{deleted: true})
}

func (t *transaction) stage(key docKey, w write) {
	if _, ok := t.writes[key]; !ok {
		t.order = append(t.order, key)
	}
	t.writes[key] = w
}

func (t *transaction) Projects() shared.ProjectRepository  { return projectRepo{t} }
func (t *transaction) Plots() shared.PlotRepository        { return plotRepo{t} }
func (t *transaction) Bookings() shared.BookingRepository  { return bookingRepo{t} }
func (t *transaction) Users() shared.UserRepository        { return userRepo{t} }
func (t *transaction) Tasks() shared.TaskRepository        { return taskRepo{t} }
func (t *transaction) Activity() shared.ActivityRepository { return activityRepo{t} }

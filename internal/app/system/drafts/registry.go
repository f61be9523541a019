package drafts

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blocklist"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/lessonsave"
)

// DefaultTTL is how long an untouched draft is kept.
const DefaultTTL = 12 * time.Hour

// Registry holds the open drafts of all users.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	ttl    time.Duration
	now    func() time.Time
}

// NewRegistry creates a Registry. A ttl of zero or less uses DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock replaces the time source. Tests use it to expire drafts.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *Registry) clock() time.Time {
	r.mu.Lock()
	now := r.now
	r.mu.Unlock()
	return now()
}

// TTL returns the idle lifetime of a draft.
func (r *Registry) TTL() time.Duration { return r.ttl }

// Create opens a draft for owner starting from l. A zero Loaded with only a
// CourseID is a new lesson.
func (r *Registry) Create(owner string, l lessonsave.Loaded) *Draft {
	d := &Draft{
		id:          uuid.NewString(),
		owner:       owner,
		now:         r.clock,
		lessonID:    l.LessonID,
		courseID:    l.CourseID,
		title:       l.Title,
		description: l.Description,
		order:       l.Order,
		list:        blocklist.New(l.Blocks),
		state:       StateIdle,
	}
	d.touched = r.clock()

	r.mu.Lock()
	r.drafts[d.id] = d
	r.mu.Unlock()
	return d
}

// Get returns owner's draft with id. Expired drafts are removed and reported
// as not found.
func (r *Registry) Get(id, owner string) (*Draft, error) {
	r.mu.Lock()
	d, ok := r.drafts[id]
	now := r.now()
	r.mu.Unlock()

	if !ok || d.owner != owner {
		return nil, ErrNotFound
	}
	if d.expired(now.Add(-r.ttl)) {
		r.remove(id)
		return nil, ErrNotFound
	}
	return d, nil
}

// Discard removes owner's draft with id.
func (r *Registry) Discard(id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok || d.owner != owner {
		return ErrNotFound
	}
	delete(r.drafts, id)
	return nil
}

// DiscardOwner removes every draft owned by owner and returns how many it removed.
func (r *Registry) DiscardOwner(owner string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, d := range r.drafts {
		if d.owner == owner {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed
}

// Sweep removes drafts idle for longer than the TTL and returns how many it removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	cutoff := r.now().Add(-r.ttl)
	all := make([]*Draft, 0, len(r.drafts))
	for _, d := range r.drafts {
		all = append(all, d)
	}
	r.mu.Unlock()

	removed := 0
	for _, d := range all {
		if d.expired(cutoff) {
			r.remove(d.id)
			removed++
		}
	}
	return removed
}

// Len returns the number of open drafts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
}

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/metrics"
)

// Action names a store mutation, used for change notification and metrics.
type Action string

const (
	ActionShowToast          Action = "show_toast"
	ActionClearToast         Action = "clear_toast"
	ActionOpenModal          Action = "open_modal"
	ActionCloseModal         Action = "close_modal"
	ActionOpenIdleWarning    Action = "open_idle_warning"
	ActionCloseIdleWarning   Action = "close_idle_warning"
	ActionSetCurrentUser     Action = "set_current_user"
	ActionSetCurrentPractice Action = "set_current_practice"
	ActionAddAnnouncement    Action = "add_announcement"
	ActionUpdateAnnouncement Action = "update_announcement"
)

// Change is delivered to subscribers after every mutation.
type Change struct {
	Action Action
	// ToastSeq carries the toast generation for ActionShowToast changes so a
	// presenter can tie its auto-dismiss deadline to exactly one toast.
	ToastSeq uint64
}

// Snapshot is the session/UI slice of store state as one consistent read.
type Snapshot struct {
	CurrentUserID     uuid.UUID     `json:"current_user_id"`
	CurrentPracticeID string        `json:"current_practice_id"`
	Overlay           model.Overlay `json:"overlay"`
	Toast             *model.Toast  `json:"toast,omitempty"`
}

// Store is the single source of truth for session context, the mock domain
// collections and UI coordination state. All mutation goes through the action
// methods below; nothing else writes store state. Reads return copies, so
// callers can never alias internal slices.
type Store struct {
	mu sync.RWMutex

	currentUserID     uuid.UUID
	currentPracticeID string

	overlay  model.Overlay
	toast    *model.Toast
	toastSeq uint64

	users         []model.User
	practices     []model.Practice
	patients      []model.Patient
	claims        []model.Claim
	appointments  []model.Appointment
	staff         []model.Staff
	rooms         []model.Room
	announcements []model.Announcement

	subMu   sync.Mutex
	subs    map[int]chan Change
	nextSub int

	logger  *logger.Logger
	metrics *metrics.Metrics
}

// New creates a store populated from seed. Both logger and metrics may be nil.
func New(seed Seed, log *logger.Logger, m *metrics.Metrics) *Store {
	s := &Store{
		currentPracticeID: model.PracticeAll,
		overlay:           model.Overlay{Kind: model.OverlayNone},
		subs:              make(map[int]chan Change),
		logger:            log,
		metrics:           m,
	}
	s.load(seed)
	if log != nil {
		log.Debug("store seeded",
			"users", len(s.users),
			"practices", len(s.practices),
			"patients", len(s.patients),
			"claims", len(s.claims),
		)
	}
	return s
}

func (s *Store) load(seed Seed) {
	s.users = append([]model.User(nil), seed.Users...)
	s.practices = append([]model.Practice(nil), seed.Practices...)
	s.patients = append([]model.Patient(nil), seed.Patients...)
	s.appointments = append([]model.Appointment(nil), seed.Appointments...)
	s.staff = append([]model.Staff(nil), seed.Staff...)
	s.rooms = append([]model.Room(nil), seed.Rooms...)
	s.announcements = append([]model.Announcement(nil), seed.Announcements...)

	// Claim statuses arrive in whatever casing the seed carries; fold them to
	// canonical form once here so every downstream comparison is exact.
	s.claims = make([]model.Claim, len(seed.Claims))
	for i, c := range seed.Claims {
		c.Status = model.NormalizeClaimStatus(string(c.Status))
		s.claims[i] = c
	}
}

// Subscribe registers a change listener. The returned cancel func must be
// called on teardown; after cancel the channel is closed and no further
// changes are delivered. Slow subscribers have changes dropped rather than
// blocking the mutating caller.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 32)
	s.subs[id] = ch
	if s.metrics != nil {
		s.metrics.StoreSubscribers.Inc()
	}

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
			if s.metrics != nil {
				s.metrics.StoreSubscribers.Dec()
			}
		}
	}
	return ch, cancel
}

func (s *Store) notify(change Change) {
	if s.metrics != nil {
		s.metrics.StoreActions.WithLabelValues(string(change.Action)).Inc()
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
			// Subscriber is not keeping up; drop instead of blocking the
			// single mutator path.
		}
	}
}

// ShowToast replaces any pending toast and returns the new toast generation.
// The previous toast's auto-dismiss deadline is superseded: ClearToastIf with
// the old generation becomes a no-op.
func (s *Store) ShowToast(message string, typ model.ToastType) uint64 {
	if typ == "" {
		typ = model.ToastInfo
	}
	s.mu.Lock()
	s.toastSeq++
	seq := s.toastSeq
	s.toast = &model.Toast{Message: message, Type: typ, ShownAt: time.Now()}
	s.mu.Unlock()

	s.notify(Change{Action: ActionShowToast, ToastSeq: seq})
	return seq
}

// ClearToast removes the pending toast unconditionally. Idempotent.
func (s *Store) ClearToast() {
	s.mu.Lock()
	cleared := s.toast != nil
	s.toast = nil
	s.mu.Unlock()

	if cleared {
		s.notify(Change{Action: ActionClearToast})
	}
}

// ClearToastIf removes the toast only if seq still identifies the current
// one. Auto-dismiss deadlines use this so a timer that fires late can never
// clear a toast it no longer applies to.
func (s *Store) ClearToastIf(seq uint64) bool {
	s.mu.Lock()
	if s.toast == nil || s.toastSeq != seq {
		s.mu.Unlock()
		return false
	}
	s.toast = nil
	s.mu.Unlock()

	s.notify(Change{Action: ActionClearToast})
	return true
}

// OpenModal shows the general modal, replacing whatever overlay was visible.
func (s *Store) OpenModal(content model.ModalContent) {
	s.mu.Lock()
	s.overlay = model.Overlay{Kind: model.OverlayModal, Modal: &content}
	s.mu.Unlock()

	s.notify(Change{Action: ActionOpenModal})
}

// CloseModal dismisses the general modal. Safe to call when it is not open;
// an idle warning overlay is left untouched.
func (s *Store) CloseModal() {
	s.mu.Lock()
	if s.overlay.Kind != model.OverlayModal {
		s.mu.Unlock()
		return
	}
	s.overlay = model.Overlay{Kind: model.OverlayNone}
	s.mu.Unlock()

	s.notify(Change{Action: ActionCloseModal})
}

// OpenIdleWarning shows the idle-timeout warning, replacing any open modal.
func (s *Store) OpenIdleWarning() {
	s.mu.Lock()
	s.overlay = model.Overlay{Kind: model.OverlayIdleWarning}
	s.mu.Unlock()

	s.notify(Change{Action: ActionOpenIdleWarning})
}

// CloseIdleWarning dismisses the idle warning. Safe to call when not shown.
func (s *Store) CloseIdleWarning() {
	s.mu.Lock()
	if s.overlay.Kind != model.OverlayIdleWarning {
		s.mu.Unlock()
		return
	}
	s.overlay = model.Overlay{Kind: model.OverlayNone}
	s.mu.Unlock()

	s.notify(Change{Action: ActionCloseIdleWarning})
}

// SetCurrentUser selects the session user. The id is not validated against
// the user collection; an unknown id simply yields empty views downstream.
func (s *Store) SetCurrentUser(id uuid.UUID) {
	s.mu.Lock()
	s.currentUserID = id
	s.mu.Unlock()

	s.notify(Change{Action: ActionSetCurrentUser})
}

// SetCurrentPractice selects the practice context. PracticeAll disables
// filtering; any other id filters to exact match.
func (s *Store) SetCurrentPractice(id string) {
	s.mu.Lock()
	s.currentPracticeID = id
	s.mu.Unlock()

	s.notify(Change{Action: ActionSetCurrentPractice})
}

// AddAnnouncement appends a new announcement and returns it.
func (s *Store) AddAnnouncement(a model.Announcement) model.Announcement {
	now := time.Now()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	s.mu.Lock()
	s.announcements = append(s.announcements, a)
	s.mu.Unlock()

	s.notify(Change{Action: ActionAddAnnouncement})
	return a
}

// DeactivateAnnouncement marks an announcement inactive. Returns false if the
// id is unknown.
func (s *Store) DeactivateAnnouncement(id uuid.UUID) bool {
	s.mu.Lock()
	found := false
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].IsActive = false
			s.announcements[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify(Change{Action: ActionUpdateAnnouncement})
	}
	return found
}

// State returns the session/UI slice as one consistent snapshot.
func (s *Store) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		CurrentUserID:     s.currentUserID,
		CurrentPracticeID: s.currentPracticeID,
		Overlay:           s.overlay,
	}
	if s.overlay.Modal != nil {
		c := *s.overlay.Modal
		snap.Overlay.Modal = &c
	}
	if s.toast != nil {
		t := *s.toast
		snap.Toast = &t
	}
	return snap
}

// ToastSeq returns the current toast generation.
func (s *Store) ToastSeq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toastSeq
}

// CurrentUser resolves the selected user, if it exists in the collection.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == s.currentUserID {
			return u, true
		}
	}
	return model.User{}, false
}

// CurrentPracticeID returns the selected practice id.
func (s *Store) CurrentPracticeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPracticeID
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) Practices() []model.Practice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Practice(nil), s.practices...)
}

// PracticeByID looks up a practice. The PracticeAll sentinel is not a real
// practice and never resolves.
func (s *Store) PracticeByID(id string) (model.Practice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.practices {
		if p.ID == id {
			return p, true
		}
	}
	return model.Practice{}, false
}

func (s *Store) UserByID(id uuid.UUID) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// PatientsForPractice returns patients visible under the practice id.
func (s *Store) PatientsForPractice(practiceID string) []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Patient
	for _, p := range s.patients {
		if model.MatchesPractice(practiceID, p.PracticeID) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) PatientByID(id uuid.UUID) (model.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return model.Patient{}, false
}

func (s *Store) ClaimsForPractice(practiceID string) []model.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Claim
	for _, c := range s.claims {
		if model.MatchesPractice(practiceID, c.PracticeID) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) AppointmentsForPractice(practiceID string) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Appointment
	for _, a := range s.appointments {
		if model.MatchesPractice(practiceID, a.PracticeID) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) StaffForPractice(practiceID string) []model.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Staff
	for _, m := range s.staff {
		if model.MatchesPractice(practiceID, m.PracticeID) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) RoomsForPractice(practiceID string) []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Room
	for _, r := range s.rooms {
		if model.MatchesPractice(practiceID, r.PracticeID) {
			out = append(out, r)
		}
	}
	return out
}

// Announcements returns every announcement, active or not.
func (s *Store) Announcements() []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Announcement(nil), s.announcements...)
}

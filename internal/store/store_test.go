package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
)

func testSeed() Seed {
	p1Patient := uuid.New()
	return Seed{
		Practices: []model.Practice{
			{ID: "p1", Name: "Practice One"},
			{ID: "p2", Name: "Practice Two"},
		},
		Users: []model.User{
			{Base: model.Base{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001")}, Name: "Biller", Role: model.RoleBiller, PracticeID: "p1"},
		},
		Patients: []model.Patient{
			{Base: model.Base{ID: p1Patient}, PracticeID: "p1", FirstName: "Ann", LastName: "Lee"},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p2", FirstName: "Bob", LastName: "Ray"},
		},
		Claims: []model.Claim{
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: p1Patient, Amount: 100, Status: "Paid"},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: p1Patient, Amount: 200, Status: "Denied"},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p2", Amount: 300, Status: model.ClaimStatusPending},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testSeed(), nil, nil)
}

func TestPracticeFilterAllBypass(t *testing.T) {
	s := newTestStore(t)

	all := s.ClaimsForPractice(model.PracticeAll)
	assert.Len(t, all, 3, "the all sentinel must return every claim")

	p1 := s.ClaimsForPractice("p1")
	require.Len(t, p1, 2)
	for _, c := range p1 {
		assert.Equal(t, "p1", c.PracticeID)
	}

	assert.Empty(t, s.ClaimsForPractice("no-such-practice"))
}

func TestClaimStatusNormalizedOnLoad(t *testing.T) {
	s := newTestStore(t)

	statuses := make(map[model.ClaimStatus]int)
	for _, c := range s.ClaimsForPractice("p1") {
		statuses[c.Status]++
	}
	assert.Equal(t, 1, statuses[model.ClaimStatusPaid])
	assert.Equal(t, 1, statuses[model.ClaimStatusDenied])
}

func TestShowToastOverwrites(t *testing.T) {
	s := newTestStore(t)

	seqA := s.ShowToast("A", model.ToastInfo)
	seqB := s.ShowToast("B", model.ToastInfo)
	assert.Greater(t, seqB, seqA)

	snap := s.State()
	require.NotNil(t, snap.Toast)
	assert.Equal(t, "B", snap.Toast.Message)
}

func TestClearToastIfIgnoresStaleGeneration(t *testing.T) {
	s := newTestStore(t)

	seqA := s.ShowToast("A", model.ToastInfo)
	s.ShowToast("B", model.ToastInfo)

	// A's auto-dismiss deadline fires late: it must not clear B.
	assert.False(t, s.ClearToastIf(seqA))
	snap := s.State()
	require.NotNil(t, snap.Toast)
	assert.Equal(t, "B", snap.Toast.Message)

	assert.True(t, s.ClearToastIf(s.ToastSeq()))
	assert.Nil(t, s.State().Toast)
}

func TestClearToastIdempotent(t *testing.T) {
	s := newTestStore(t)

	s.ClearToast()
	s.ClearToast()
	assert.Nil(t, s.State().Toast)
}

func TestOverlayExclusive(t *testing.T) {
	s := newTestStore(t)

	s.OpenModal(model.ModalContent{Title: "Hello", Body: "World"})
	snap := s.State()
	assert.Equal(t, model.OverlayModal, snap.Overlay.Kind)
	require.NotNil(t, snap.Overlay.Modal)
	assert.Equal(t, "Hello", snap.Overlay.Modal.Title)

	// Opening the idle warning replaces the modal; only one overlay exists.
	s.OpenIdleWarning()
	snap = s.State()
	assert.Equal(t, model.OverlayIdleWarning, snap.Overlay.Kind)
	assert.Nil(t, snap.Overlay.Modal)

	// CloseModal does not touch the idle warning.
	s.CloseModal()
	assert.Equal(t, model.OverlayIdleWarning, s.State().Overlay.Kind)

	s.CloseIdleWarning()
	assert.Equal(t, model.OverlayNone, s.State().Overlay.Kind)
}

func TestCloseModalWhenClosedIsNoOp(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	defer cancel()

	s.CloseModal()
	assert.Equal(t, model.OverlayNone, s.State().Overlay.Kind)

	select {
	case change := <-ch:
		t.Fatalf("no change expected for a no-op close, got %v", change.Action)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnknownSelectionYieldsEmptyViews(t *testing.T) {
	s := newTestStore(t)

	s.SetCurrentUser(uuid.New())
	_, ok := s.CurrentUser()
	assert.False(t, ok)

	s.SetCurrentPractice("ghost")
	assert.Empty(t, s.PatientsForPractice(s.CurrentPracticeID()))
}

func TestSubscribeReceivesEveryAction(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	defer cancel()

	s.ShowToast("hi", model.ToastInfo)
	s.OpenModal(model.ModalContent{Title: "t", Body: "b"})
	s.SetCurrentPractice("p1")

	var got []Action
	timeout := time.After(time.Second)
	for len(got) < 3 {
		select {
		case change := <-ch:
			got = append(got, change.Action)
		case <-timeout:
			t.Fatalf("expected 3 changes, got %v", got)
		}
	}
	assert.Equal(t, []Action{ActionShowToast, ActionOpenModal, ActionSetCurrentPractice}, got)
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	s := newTestStore(t)

	ch, cancel := s.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Mutations after cancel must not panic.
	s.ShowToast("after", model.ToastInfo)
}

func TestStateSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t)

	s.OpenModal(model.ModalContent{Title: "orig", Body: "b"})
	snap := s.State()
	snap.Overlay.Modal.Title = "mutated"

	assert.Equal(t, "orig", s.State().Overlay.Modal.Title)
}

func TestAnnouncementLifecycle(t *testing.T) {
	s := newTestStore(t)

	a := s.AddAnnouncement(model.Announcement{Title: "T", Message: "M", Type: model.AnnouncementInfo, IsActive: true})
	assert.NotEqual(t, uuid.Nil, a.ID)

	require.True(t, s.DeactivateAnnouncement(a.ID))
	for _, got := range s.Announcements() {
		if got.ID == a.ID {
			assert.False(t, got.IsActive)
		}
	}

	assert.False(t, s.DeactivateAnnouncement(uuid.New()))
}

package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	sessionRepo "mentorhub/database/repository/session"
	"mentorhub/models"
)

// --- in-memory fakes ---

type fakeSessionRepo struct {
	sessions  []models.ScheduledSession
	created   []*models.ScheduledSession
	activeErr error
	createErr error
	getErr    error
	calls     int
}

func (f *fakeSessionRepo) GetActiveSessions(_ context.Context, mentorID string) ([]models.ScheduledSession, error) {
	f.calls++
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	var out []models.ScheduledSession
	for _, s := range f.sessions {
		if s.MentorID == mentorID && s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.ScheduledSession) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, session)
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, sessionID string) (*models.ScheduledSession, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.sessions {
		if f.sessions[i].ID == sessionID {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSessionRepo) ListByMentor(_ context.Context, mentorID string) ([]models.ScheduledSession, error) {
	f.calls++
	var out []models.ScheduledSession
	for _, s := range f.sessions {
		if s.MentorID == mentorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByMentee(_ context.Context, menteeID string) ([]models.ScheduledSession, error) {
	f.calls++
	var out []models.ScheduledSession
	for _, s := range f.sessions {
		if s.MenteeID == menteeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, sessionID, status string) error {
	f.calls++
	for i := range f.sessions {
		if f.sessions[i].ID == sessionID {
			f.sessions[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeSessionRepo) ListStartingBetween(_ context.Context, from, to time.Time) ([]models.ScheduledSession, error) {
	f.calls++
	var out []models.ScheduledSession
	for _, s := range f.sessions {
		if s.IsActive() && !s.ScheduledStart.Before(from) && s.ScheduledStart.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	windows []models.WeeklyAvailabilityWindow
	err     error
	calls   int
}

func (f *fakeAvailabilityRepo) GetWeeklyAvailability(_ context.Context, _ string) ([]models.WeeklyAvailabilityWindow, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.windows, nil
}

func (f *fakeAvailabilityRepo) ReplaceForDay(_ context.Context, _ string, _ int, _ []models.WeeklyAvailabilityWindow) error {
	return nil
}

func (f *fakeAvailabilityRepo) DeleteForDay(_ context.Context, _ string, _ int) error {
	return nil
}

type fakeMentorRepo struct {
	mentors map[string]*models.Mentor
	calls   int
}

func (f *fakeMentorRepo) Create(_ context.Context, _ *models.Mentor) error { return nil }

func (f *fakeMentorRepo) GetByID(_ context.Context, id string) (*models.Mentor, error) {
	f.calls++
	if m, ok := f.mentors[id]; ok {
		return m, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMentorRepo) GetByEmail(_ context.Context, _ string) (*models.Mentor, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMentorRepo) Update(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}

func (f *fakeMentorRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeMentorRepo) ListByExpertise(_ context.Context, _ string, _ int64) ([]models.Mentor, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Update(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeNotifier struct {
	err  error
	sent int
}

func (f *fakeNotifier) NotifyUser(_ context.Context, _, _, _, _ string) error {
	f.sent++
	return f.err
}

func (f *fakeNotifier) NotifyMentor(_ context.Context, _, _, _, _ string) error {
	f.sent++
	return f.err
}

func (f *fakeNotifier) ListForRecipient(_ context.Context, _ string, _ int64) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(_ context.Context, _, _ string) error { return nil }

type fakeMailer struct {
	err  error
	sent []models.BookingEmail
}

func (f *fakeMailer) SendBookingEmail(_ context.Context, email models.BookingEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type fakeSlotCache struct {
	entries     map[string][]string
	invalidated []string
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{entries: map[string][]string{}}
}

func (f *fakeSlotCache) GetSlots(_ context.Context, mentorID, date string) ([]string, bool) {
	slots, ok := f.entries[mentorID+"|"+date]
	return slots, ok
}

func (f *fakeSlotCache) SetSlots(_ context.Context, mentorID, date string, slots []string) {
	f.entries[mentorID+"|"+date] = slots
}

func (f *fakeSlotCache) InvalidateSlots(_ context.Context, mentorID, date string) {
	key := mentorID + "|" + date
	delete(f.entries, key)
	f.invalidated = append(f.invalidated, key)
}

type fakeReminders struct {
	err       error
	scheduled []string
}

func (f *fakeReminders) ScheduleSessionReminder(sessionID string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, sessionID)
	return nil
}

// --- fixtures ---

type engineFixture struct {
	engine    *DefaultBookingEngine
	sessions  *fakeSessionRepo
	avail     *fakeAvailabilityRepo
	mentors   *fakeMentorRepo
	users     *fakeUserRepo
	notifier  *fakeNotifier
	mailer    *fakeMailer
	reminders *fakeReminders
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		sessions: &fakeSessionRepo{},
		avail:    &fakeAvailabilityRepo{},
		mentors: &fakeMentorRepo{mentors: map[string]*models.Mentor{
			"mentor-1": {ID: "mentor-1", Name: "Ada", Email: "ada@example.com", HourlyRate: 60},
		}},
		users: &fakeUserRepo{users: map[string]*models.User{
			"mentee-1": {ID: "mentee-1", Name: "Grace", Email: "grace@example.com"},
		}},
		notifier:  &fakeNotifier{},
		mailer:    &fakeMailer{},
		reminders: &fakeReminders{},
	}
	f.engine = &DefaultBookingEngine{
		SessionRepo:      f.sessions,
		AvailabilityRepo: f.avail,
		MentorRepo:       f.mentors,
		UserRepo:         f.users,
		Notifier:         f.notifier,
		Mailer:           f.mailer,
		Reminders:        f.reminders,
		CommissionRate:   0.15,
	}
	return f
}

func candidate(date, clock string, minutes int) models.BookingCandidate {
	return models.BookingCandidate{
		MentorID:        "mentor-1",
		MenteeID:        "mentee-1",
		RequestedDate:   date,
		RequestedTime:   clock,
		DurationMinutes: minutes,
		Topic:           "career planning",
	}
}

// --- RequestBooking ---

func TestRequestBookingHappyPath(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "17:00")}

	session, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.SessionStatusRequested, session.Status)
	assert.Equal(t, at(10, 0), session.ScheduledStart)
	assert.Equal(t, at(11, 0), session.ScheduledEnd)
	assert.InDelta(t, 60, session.BasePrice, 1e-9)
	assert.InDelta(t, 9, session.PlatformFee, 1e-9)
	assert.InDelta(t, 69, session.FinalPrice, 1e-9)

	require.Len(t, f.sessions.created, 1)
	assert.Equal(t, 2, f.notifier.sent)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "grace@example.com", f.mailer.sent[0].RecipientEmail)
	assert.Equal(t, []string{session.ID}, f.reminders.scheduled)
}

func TestRequestBookingOverlapRejected(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "17:00")}
	f.sessions.sessions = []models.ScheduledSession{
		session(models.SessionStatusConfirmed, at(10, 0), at(11, 0)),
	}

	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:30", 60))
	require.Error(t, err)
	assert.Equal(t, KindSlotConflict, KindOf(err))
	assert.Empty(t, f.sessions.created)
	assert.Zero(t, f.notifier.sent)
}

func TestRequestBookingBackToBackAccepted(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "17:00")}
	f.sessions.sessions = []models.ScheduledSession{
		session(models.SessionStatusConfirmed, at(10, 0), at(11, 0)),
	}

	got, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "11:00", 60))
	require.NoError(t, err)
	assert.Equal(t, at(11, 0), got.ScheduledStart)
}

func TestRequestBookingOutsideAvailability(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "17:00")}

	// 2026-03-03 is a Tuesday; the mentor only opens Mondays.
	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-03", "10:00", 60))
	require.Error(t, err)
	assert.Equal(t, KindOutsideAvailability, KindOf(err))
}

// A mentor with no windows at all accepts any time.
func TestRequestBookingNoWindowsIsOpen(t *testing.T) {
	f := newEngineFixture()

	got, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "03:00", 30))
	require.NoError(t, err)
	assert.InDelta(t, 30, got.BasePrice, 1e-9)
}

func TestRequestBookingCancelledSessionsDoNotBlock(t *testing.T) {
	f := newEngineFixture()
	f.sessions.sessions = []models.ScheduledSession{
		session(models.SessionStatusCancelled, at(10, 0), at(11, 0)),
		session(models.SessionStatusCompleted, at(10, 0), at(11, 0)),
	}

	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	assert.NoError(t, err)
}

func TestRequestBookingValidationBeforeStores(t *testing.T) {
	bad := []models.BookingCandidate{
		{MenteeID: "mentee-1", RequestedDate: "2026-03-02", RequestedTime: "10:00", DurationMinutes: 60},
		candidate("03/02/2026", "10:00", 60),
		candidate("2026-03-02", "10:70", 60),
		candidate("2026-03-02", "banana", 60),
		candidate("2026-03-02", "10:00", 0),
		candidate("2026-03-02", "10:00", -30),
	}

	for _, c := range bad {
		f := newEngineFixture()
		_, err := f.engine.RequestBooking(context.Background(), c)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Zero(t, f.sessions.calls, "no store call expected for %+v", c)
		assert.Zero(t, f.avail.calls)
		assert.Zero(t, f.mentors.calls)
	}
}

func TestRequestBookingUnknownMentor(t *testing.T) {
	f := newEngineFixture()
	c := candidate("2026-03-02", "10:00", 60)
	c.MentorID = "nobody"

	_, err := f.engine.RequestBooking(context.Background(), c)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

// A store failure aborts the booking; it is never read as "no conflicts".
func TestRequestBookingStoreFailure(t *testing.T) {
	f := newEngineFixture()
	f.sessions.activeErr = errors.New("connection reset")

	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.Error(t, err)
	assert.Equal(t, KindStoreUnavailable, KindOf(err))
	assert.Empty(t, f.sessions.created)

	f = newEngineFixture()
	f.avail.err = errors.New("connection reset")

	_, err = f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.Error(t, err)
	assert.Equal(t, KindStoreUnavailable, KindOf(err))
}

// The write-side re-check surfaces as a slot conflict when a racing booking
// won the slot between the read and the insert.
func TestRequestBookingWriteSideConflict(t *testing.T) {
	f := newEngineFixture()
	f.sessions.createErr = sessionRepo.ErrSlotTaken

	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.Error(t, err)
	assert.Equal(t, KindSlotConflict, KindOf(err))
}

// Notification, email and reminder failures never fail a recorded booking.
func TestRequestBookingSideEffectFailuresIgnored(t *testing.T) {
	f := newEngineFixture()
	f.notifier.err = errors.New("fcm down")
	f.mailer.err = errors.New("ses down")
	f.reminders.err = errors.New("redis down")

	session, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Len(t, f.sessions.created, 1)
}

func TestRequestBookingCommissionRateInjected(t *testing.T) {
	f := newEngineFixture()
	f.engine.CommissionRate = 0.2

	session, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.NoError(t, err)
	assert.InDelta(t, 12, session.PlatformFee, 1e-9)
	assert.InDelta(t, 72, session.FinalPrice, 1e-9)
	assert.Equal(t, 0.2, session.CommissionRate)
}

// --- BookableSlots ---

func TestBookableSlots(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "11:00")}
	f.sessions.sessions = []models.ScheduledSession{
		session(models.SessionStatusConfirmed, at(9, 30), at(10, 30)),
	}

	got, err := f.engine.BookableSlots(context.Background(), "mentor-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:30"}, got)
}

func TestBookableSlotsMemoizedInSlotCache(t *testing.T) {
	f := newEngineFixture()
	f.avail.windows = []models.WeeklyAvailabilityWindow{window(1, "09:00", "10:00")}
	cache := newFakeSlotCache()
	f.engine.Slots = cache

	first, err := f.engine.BookableSlots(context.Background(), "mentor-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, first)
	assert.Equal(t, first, cache.entries["mentor-1|2026-03-02"])

	// A cached date is served without touching the stores.
	storeCalls := f.sessions.calls + f.avail.calls
	second, err := f.engine.BookableSlots(context.Background(), "mentor-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, storeCalls, f.sessions.calls+f.avail.calls)
}

func TestRequestBookingInvalidatesSlotCache(t *testing.T) {
	f := newEngineFixture()
	cache := newFakeSlotCache()
	cache.entries["mentor-1|2026-03-02"] = []string{"10:00"}
	f.engine.Slots = cache

	_, err := f.engine.RequestBooking(context.Background(), candidate("2026-03-02", "10:00", 60))
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, "mentor-1|2026-03-02")
}

func TestCancelTransitionInvalidatesSlotCache(t *testing.T) {
	f := newEngineFixture()
	id := seedSession(f, models.SessionStatusConfirmed)
	cache := newFakeSlotCache()
	cache.entries["mentor-1|2026-03-02"] = []string{}
	f.engine.Slots = cache

	_, err := f.engine.TransitionSession(context.Background(), id, "cancel")
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, "mentor-1|2026-03-02")

	// Confirming a request does not touch the cache.
	f = newEngineFixture()
	id = seedSession(f, models.SessionStatusRequested)
	cache = newFakeSlotCache()
	f.engine.Slots = cache

	_, err = f.engine.TransitionSession(context.Background(), id, "accept")
	require.NoError(t, err)
	assert.Empty(t, cache.invalidated)
}

func TestBookableSlotsBadDate(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.BookableSlots(context.Background(), "mentor-1", "yesterday")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

// --- transitions ---

func seedSession(f *engineFixture, status string) string {
	s := session(status, at(10, 0), at(11, 0))
	s.ID = "sess-1"
	f.sessions.sessions = []models.ScheduledSession{s}
	return s.ID
}

func TestTransitionSession(t *testing.T) {
	tests := []struct {
		from   string
		action string
		want   string
	}{
		{models.SessionStatusRequested, "accept", models.SessionStatusConfirmed},
		{models.SessionStatusRequested, "decline", models.SessionStatusCancelled},
		{models.SessionStatusRequested, "cancel", models.SessionStatusCancelled},
		{models.SessionStatusConfirmed, "cancel", models.SessionStatusCancelled},
		{models.SessionStatusConfirmed, "start", models.SessionStatusInProgress},
		{models.SessionStatusConfirmed, "complete", models.SessionStatusCompleted},
		{models.SessionStatusInProgress, "complete", models.SessionStatusCompleted},
		{models.SessionStatusConfirmed, "no_show", models.SessionStatusNoShow},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.action, func(t *testing.T) {
			f := newEngineFixture()
			id := seedSession(f, tt.from)

			got, err := f.engine.TransitionSession(context.Background(), id, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.want, f.sessions.sessions[0].Status)
		})
	}
}

func TestTransitionSessionIllegal(t *testing.T) {
	tests := []struct {
		from   string
		action string
	}{
		{models.SessionStatusCompleted, "accept"},
		{models.SessionStatusCancelled, "cancel"},
		{models.SessionStatusRequested, "start"},
		{models.SessionStatusRequested, "complete"},
		{models.SessionStatusRequested, "no_show"},
		{models.SessionStatusConfirmed, "accept"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.action, func(t *testing.T) {
			f := newEngineFixture()
			id := seedSession(f, tt.from)

			_, err := f.engine.TransitionSession(context.Background(), id, tt.action)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, tt.from, f.sessions.sessions[0].Status)
		})
	}
}

func TestTransitionSessionUnknownActionOrSession(t *testing.T) {
	f := newEngineFixture()
	seedSession(f, models.SessionStatusRequested)

	_, err := f.engine.TransitionSession(context.Background(), "sess-1", "frobnicate")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.engine.TransitionSession(context.Background(), "missing", "accept")
	assert.Equal(t, KindValidation, KindOf(err))
}

// --- lookups ---

func TestGetSession(t *testing.T) {
	f := newEngineFixture()
	id := seedSession(f, models.SessionStatusConfirmed)

	got, err := f.engine.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = f.engine.GetSession(context.Background(), "missing")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestListSessions(t *testing.T) {
	f := newEngineFixture()
	seedSession(f, models.SessionStatusConfirmed)

	byMentor, err := f.engine.ListMentorSessions(context.Background(), "mentor-1")
	require.NoError(t, err)
	assert.Len(t, byMentor, 1)

	byMentee, err := f.engine.ListMenteeSessions(context.Background(), "mentee-1")
	require.NoError(t, err)
	assert.Len(t, byMentee, 1)
}

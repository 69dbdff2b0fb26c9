package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var slot = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc          *AppointmentService
	appointments *stubAppointmentRepo
	properties   *stubPropertyRepo
	users        *stubUserRepo
	locker       *stubLocker
}

func newFixture() *fixture {
	f := &fixture{
		appointments: newStubAppointmentRepo(),
		properties:   newStubPropertyRepo(),
		users:        newStubUserRepo(),
		locker:       newStubLocker(),
	}
	f.svc = NewAppointmentService(f.appointments, NewOwnershipResolver(f.properties), f.users, f.locker, discardLogger)

	f.users.add(&domain.User{ID: "admin-1", FirstName: "Ada", Email: "ada@example.com", Role: domain.RoleAdmin})
	f.users.add(&domain.User{ID: "owner-1", FirstName: "Olga", Email: "olga@example.com", Phone: "+359888000001", Role: domain.RoleAgent})
	f.users.add(&domain.User{ID: "agent-2", FirstName: "Bruno", Email: "bruno@example.com", Phone: "+359888000002", Role: domain.RoleAgent})
	f.users.add(&domain.User{ID: "agent-3", FirstName: "Carla", Email: "carla@example.com", Role: domain.RoleAgent})
	f.users.add(&domain.User{ID: "client-1", FirstName: "Dora", Email: "dora@example.com", Phone: "+359888000004", Role: domain.RoleClient})

	f.properties.byID["prop-1"] = &domain.Property{ID: "prop-1", Title: "Sea view flat", City: "Varna", AgentID: "owner-1"}
	f.properties.byID["prop-2"] = &domain.Property{ID: "prop-2", Title: "Mountain house", City: "Bansko", AgentID: "owner-1"}
	return f
}

func as(id, role string) ports.Requester {
	return ports.Requester{ID: id, Role: role}
}

func booking(start time.Time, minutes int) ports.CreateAppointmentInput {
	return ports.CreateAppointmentInput{
		AppointmentDate: start,
		DurationMinutes: minutes,
		ClientName:      "John Doe",
		ClientEmail:     "john@example.com",
		ClientPhone:     "+359888123456",
	}
}

func mustCreate(t *testing.T, f *fixture, propertyID string, in ports.CreateAppointmentInput, r ports.Requester) *domain.Appointment {
	t.Helper()
	a, err := f.svc.Create(context.Background(), propertyID, in, r)
	if err != nil {
		t.Fatalf("create: unexpected error: %v", err)
	}
	return a
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestAppointmentService_Create_Success(t *testing.T) {
	f := newFixture()

	a := mustCreate(t, f, "prop-1", booking(slot, 0), as("agent-2", domain.RoleAgent))

	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	if a.Status != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, a.Status)
	}
	if a.DurationMinutes != domain.DefaultDurationMinutes {
		t.Errorf("expected default duration %d, got %d", domain.DefaultDurationMinutes, a.DurationMinutes)
	}
	if a.AgentID != "agent-2" {
		t.Errorf("expected agent to be the requester, got %q", a.AgentID)
	}
	if a.PropertyID != "prop-1" {
		t.Errorf("expected property prop-1, got %q", a.PropertyID)
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
	if _, ok := f.appointments.byID[a.ID]; !ok {
		t.Error("appointment was not persisted")
	}
	if len(f.locker.locked) != 0 {
		t.Error("property lock must be released after create")
	}
	if len(f.locker.acquired) != 1 || f.locker.acquired[0] != "prop-1" {
		t.Errorf("expected lock on prop-1, got %v", f.locker.acquired)
	}
}

func TestAppointmentService_Create_PropertyNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), "missing", booking(slot, 60), as("agent-2", domain.RoleAgent))
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

// Scenario A: same start on the same property conflicts.
func TestAppointmentService_Create_SameSlotConflicts(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))

	_, err := f.svc.Create(context.Background(), "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	if !errors.Is(err, domain.ErrScheduleConflict) {
		t.Fatalf("expected ErrScheduleConflict, got %v", err)
	}
	if len(f.appointments.byID) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(f.appointments.byID))
	}
	if len(f.locker.locked) != 0 {
		t.Error("property lock must be released after a conflict")
	}
}

// Scenario B: partial overlap conflicts.
func TestAppointmentService_Create_PartialOverlapConflicts(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 90), as("client-1", domain.RoleClient))

	_, err := f.svc.Create(context.Background(), "prop-1", booking(slot.Add(30*time.Minute), 60), as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrScheduleConflict) {
		t.Fatalf("expected ErrScheduleConflict, got %v", err)
	}
}

// Scenario C: disjoint intervals both succeed.
func TestAppointmentService_Create_NonOverlappingSucceeds(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
	mustCreate(t, f, "prop-1", booking(slot.Add(120*time.Minute), 60), as("client-1", domain.RoleClient))

	if len(f.appointments.byID) != 2 {
		t.Errorf("expected 2 stored appointments, got %d", len(f.appointments.byID))
	}
}

func TestAppointmentService_Create_AdjacentSlotSucceeds(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
	mustCreate(t, f, "prop-1", booking(slot.Add(60*time.Minute), 60), as("client-1", domain.RoleClient))
}

func TestAppointmentService_Create_OtherPropertyDoesNotConflict(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
	mustCreate(t, f, "prop-2", booking(slot, 60), as("client-1", domain.RoleClient))
}

func TestAppointmentService_Create_DurationValidation(t *testing.T) {
	f := newFixture()

	for _, minutes := range []int{10, 14, 241, 300} {
		t.Run(fmt.Sprintf("%d minutes", minutes), func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), "prop-1", booking(slot, minutes), as("client-1", domain.RoleClient))
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(f.appointments.byID) != 0 {
		t.Error("invalid requests must not persist anything")
	}
	if len(f.locker.acquired) != 0 {
		t.Error("validation must happen before the lock is taken")
	}
}

func TestAppointmentService_Create_MissingDate(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), "prop-1", booking(time.Time{}, 60), as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAppointmentService_Create_NotesTooLong(t *testing.T) {
	f := newFixture()
	in := booking(slot, 60)
	in.Notes = string(make([]byte, domain.MaxNotesLength+1))

	_, err := f.svc.Create(context.Background(), "prop-1", in, as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAppointmentService_Create_InvalidStatus(t *testing.T) {
	f := newFixture()
	in := booking(slot, 60)
	in.Status = "archived"

	_, err := f.svc.Create(context.Background(), "prop-1", in, as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAppointmentService_Create_DefaultsClientFieldsFromRequester(t *testing.T) {
	f := newFixture()

	a := mustCreate(t, f, "prop-1", ports.CreateAppointmentInput{AppointmentDate: slot}, as("client-1", domain.RoleClient))

	if a.ClientName != "Dora" || a.ClientEmail != "dora@example.com" || a.ClientPhone != "+359888000004" {
		t.Errorf("client fields not defaulted from profile: %+v", a)
	}
}

func TestAppointmentService_Create_KeepsProvidedClientFields(t *testing.T) {
	f := newFixture()

	a := mustCreate(t, f, "prop-1", ports.CreateAppointmentInput{
		AppointmentDate: slot,
		ClientName:      "Walk-in",
	}, as("client-1", domain.RoleClient))

	if a.ClientName != "Walk-in" {
		t.Errorf("provided client name must be kept, got %q", a.ClientName)
	}
	if a.ClientEmail != "dora@example.com" {
		t.Errorf("missing email must be defaulted, got %q", a.ClientEmail)
	}
}

func TestAppointmentService_Create_AnonymousWithoutClientFields(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), "prop-1", ports.CreateAppointmentInput{AppointmentDate: slot}, ports.Requester{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAppointmentService_Create_ExplicitAgent(t *testing.T) {
	f := newFixture()
	in := booking(slot, 60)
	in.AgentID = "agent-3"

	a := mustCreate(t, f, "prop-1", in, as("admin-1", domain.RoleAdmin))
	if a.AgentID != "agent-3" {
		t.Errorf("expected explicit agent agent-3, got %q", a.AgentID)
	}

	in.AgentID = "ghost"
	in.AppointmentDate = slot.Add(5 * time.Hour)
	if _, err := f.svc.Create(context.Background(), "prop-1", in, as("admin-1", domain.RoleAdmin)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown agent, got %v", err)
	}
}

func TestAppointmentService_Create_ExplicitAgentRequiresStaff(t *testing.T) {
	f := newFixture()
	in := booking(slot, 60)
	in.AgentID = "agent-3"

	_, err := f.svc.Create(context.Background(), "prop-1", in, as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client-chosen agent, got %v", err)
	}
	if len(f.appointments.byID) != 0 {
		t.Error("nothing may be written when the agent is rejected")
	}

	a := mustCreate(t, f, "prop-1", in, as("agent-2", domain.RoleAgent))
	if a.AgentID != "agent-3" {
		t.Errorf("agents may assign a colleague, got %q", a.AgentID)
	}

	// Naming yourself is not an explicit assignment.
	self := booking(slot.Add(3*time.Hour), 60)
	self.AgentID = "client-1"
	if b := mustCreate(t, f, "prop-1", self, as("client-1", domain.RoleClient)); b.AgentID != "client-1" {
		t.Errorf("expected client-1, got %q", b.AgentID)
	}
}

func TestAppointmentService_Create_ExplicitAgentMustBeStaff(t *testing.T) {
	f := newFixture()
	in := booking(slot, 60)
	in.AgentID = "client-1"

	_, err := f.svc.Create(context.Background(), "prop-1", in, as("admin-1", domain.RoleAdmin))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-agent user, got %v", err)
	}
}

func TestAppointmentService_Create_LockFailure(t *testing.T) {
	f := newFixture()
	f.locker.err = domain.ErrScheduleBusy

	_, err := f.svc.Create(context.Background(), "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrScheduleBusy) {
		t.Fatalf("expected ErrScheduleBusy, got %v", err)
	}
	if len(f.appointments.byID) != 0 {
		t.Error("nothing may be written without the lock")
	}
}

func TestAppointmentService_Create_PropertyDeletedWhileWaiting(t *testing.T) {
	f := newFixture()
	f.locker.onLock = func(propertyID string) { delete(f.properties.byID, propertyID) }

	_, err := f.svc.Create(context.Background(), "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
	if len(f.appointments.byID) != 0 {
		t.Error("no appointment may outlive its property")
	}
	if len(f.locker.locked) != 0 {
		t.Error("lock must be released")
	}
}

func TestAppointmentService_Create_RepoError(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = errors.New("db unavailable")

	if _, err := f.svc.Create(context.Background(), "prop-1", booking(slot, 60), as("client-1", domain.RoleClient)); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
	if len(f.locker.locked) != 0 {
		t.Error("lock must be released on repo failure")
	}
}

// ---------------------------------------------------------------------------
// FindOne
// ---------------------------------------------------------------------------

func TestAppointmentService_FindOne_PopulatesRelations(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))

	d, err := f.svc.FindOne(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Property == nil || d.Property.ID != "prop-1" || d.Property.AgentID != "owner-1" {
		t.Errorf("property relation not populated: %+v", d.Property)
	}
	if d.Agent == nil || d.Agent.ID != "agent-2" || d.Agent.Email != "bruno@example.com" {
		t.Errorf("agent relation not populated: %+v", d.Agent)
	}
}

func TestAppointmentService_FindOne_NotFound(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.FindOne(context.Background(), "nope"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestAppointmentService_Update_Authorization(t *testing.T) {
	cases := []struct {
		name      string
		requester ports.Requester
		wantErr   error
	}{
		{"admin", as("admin-1", domain.RoleAdmin), nil},
		{"bound agent", as("agent-2", domain.RoleAgent), nil},
		{"property owner", as("owner-1", domain.RoleAgent), nil},
		{"other agent", as("agent-3", domain.RoleAgent), domain.ErrForbidden},
		{"unrelated client", as("client-1", domain.RoleClient), domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))

			_, err := f.svc.Update(context.Background(), a.ID, ports.UpdateAppointmentInput{Notes: ptr("bring keys")}, tc.requester)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

// Scenario D: unauthorized mutation leaves the appointment unchanged.
func TestAppointmentService_Update_ForbiddenLeavesAppointmentUnchanged(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	before := *f.appointments.byID[a.ID]

	_, err := f.svc.Update(context.Background(), a.ID, ports.UpdateAppointmentInput{
		AppointmentDate: ptr(slot.Add(3 * time.Hour)),
		Status:          ptr(string(domain.StatusCancelled)),
	}, as("agent-3", domain.RoleAgent))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	after := *f.appointments.byID[a.ID]
	if after != before {
		t.Errorf("appointment changed after forbidden update:\nbefore %+v\nafter  %+v", before, after)
	}
}

// Scenario E: re-submitting the same date must not conflict with itself.
func TestAppointmentService_Update_SameDateIsNotSelfConflict(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))

	d, err := f.svc.Update(context.Background(), a.ID, ports.UpdateAppointmentInput{AppointmentDate: ptr(slot)}, as("agent-2", domain.RoleAgent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Appointment.AppointmentDate.Equal(slot) {
		t.Errorf("date changed unexpectedly: %v", d.Appointment.AppointmentDate)
	}
}

func TestAppointmentService_Update_RescheduleIntoConflict(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	second := mustCreate(t, f, "prop-1", booking(slot.Add(2*time.Hour), 60), as("agent-2", domain.RoleAgent))

	_, err := f.svc.Update(context.Background(), second.ID, ports.UpdateAppointmentInput{
		AppointmentDate: ptr(slot.Add(30 * time.Minute)),
	}, as("agent-2", domain.RoleAgent))
	if !errors.Is(err, domain.ErrScheduleConflict) {
		t.Fatalf("expected ErrScheduleConflict, got %v", err)
	}
	if !f.appointments.byID[second.ID].AppointmentDate.Equal(slot.Add(2 * time.Hour)) {
		t.Error("conflicting update must not be persisted")
	}
	if len(f.locker.locked) != 0 {
		t.Error("lock must be released after a conflict")
	}
}

func TestAppointmentService_Update_DurationOnlyUsesStoredDate(t *testing.T) {
	f := newFixture()
	first := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	mustCreate(t, f, "prop-1", booking(slot.Add(2*time.Hour), 60), as("agent-2", domain.RoleAgent))

	// Extending to 120 minutes ends exactly at the next start: allowed.
	if _, err := f.svc.Update(context.Background(), first.ID, ports.UpdateAppointmentInput{DurationMinutes: ptr(120)}, as("agent-2", domain.RoleAgent)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Extending to 150 minutes runs into it.
	_, err := f.svc.Update(context.Background(), first.ID, ports.UpdateAppointmentInput{DurationMinutes: ptr(150)}, as("agent-2", domain.RoleAgent))
	if !errors.Is(err, domain.ErrScheduleConflict) {
		t.Fatalf("expected ErrScheduleConflict, got %v", err)
	}
	if got := f.appointments.byID[first.ID].DurationMinutes; got != 120 {
		t.Errorf("expected stored duration 120, got %d", got)
	}
}

func TestAppointmentService_Update_AppliesFields(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	f.svc.now = func() time.Time { return slot.Add(24 * time.Hour) }

	d, err := f.svc.Update(context.Background(), a.ID, ports.UpdateAppointmentInput{
		ClientName:  ptr("Jane Roe"),
		ClientEmail: ptr("jane@example.com"),
		ClientPhone: ptr("+359888999999"),
		Notes:       ptr("second visit"),
		Status:      ptr(string(domain.StatusConfirmed)),
	}, as("owner-1", domain.RoleAgent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := d.Appointment
	if got.ClientName != "Jane Roe" || got.ClientEmail != "jane@example.com" || got.ClientPhone != "+359888999999" {
		t.Errorf("client fields not applied: %+v", got)
	}
	if got.Notes != "second visit" || got.Status != domain.StatusConfirmed {
		t.Errorf("notes/status not applied: %+v", got)
	}
	if !got.UpdatedAt.Equal(slot.Add(24 * time.Hour)) {
		t.Errorf("updatedAt not bumped: %v", got.UpdatedAt)
	}
	if len(f.locker.acquired) != 2 || f.locker.acquired[1] != "prop-1" {
		t.Errorf("field-only updates must lock the property, locks: %v", f.locker.acquired)
	}
	if len(f.locker.locked) != 0 {
		t.Error("lock must be released after the update")
	}
	if d.Agent == nil || d.Property == nil {
		t.Error("update must return populated relations")
	}
}

// interleavedRepo runs before once, ahead of the first FindByID, to let
// another request change the schedule between load and write.
type interleavedRepo struct {
	*stubAppointmentRepo
	before func()
}

func (r *interleavedRepo) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if hook := r.before; hook != nil {
		r.before = nil
		hook()
	}
	return r.stubAppointmentRepo.FindByID(ctx, id)
}

func TestAppointmentService_Update_FieldOnlyKeepsConcurrentReschedule(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	moved := slot.Add(4 * time.Hour)

	repo := &interleavedRepo{stubAppointmentRepo: f.appointments}
	svc := NewAppointmentService(repo, NewOwnershipResolver(f.properties), f.users, f.locker, discardLogger)
	repo.before = func() {
		if _, err := f.svc.Update(ctx, a.ID, ports.UpdateAppointmentInput{AppointmentDate: ptr(moved)}, as("agent-2", domain.RoleAgent)); err != nil {
			t.Fatalf("reschedule: unexpected error: %v", err)
		}
		mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-3", domain.RoleAgent))
	}

	if _, err := svc.Update(ctx, a.ID, ports.UpdateAppointmentInput{Notes: ptr("bring keys")}, as("agent-2", domain.RoleAgent)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := f.appointments.byID[a.ID]
	if !stored.AppointmentDate.Equal(moved) {
		t.Errorf("notes update restored a stale date: got %v, want %v", stored.AppointmentDate, moved)
	}
	if stored.Notes != "bring keys" {
		t.Errorf("notes not applied: %q", stored.Notes)
	}

	schedule, _ := f.appointments.ListByProperty(ctx, "prop-1")
	if len(schedule) != 2 {
		t.Fatalf("expected 2 appointments on prop-1, got %d", len(schedule))
	}
	for _, x := range schedule {
		if c := domain.FindConflict(x.AppointmentDate, x.DurationMinutes, schedule, x.ID); c != nil {
			t.Errorf("appointment %s overlaps %s", x.ID, c.ID)
		}
	}
}

func TestAppointmentService_Update_FieldOnlyWaitsForLock(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	f.locker.err = domain.ErrScheduleBusy

	_, err := f.svc.Update(context.Background(), a.ID, ports.UpdateAppointmentInput{Notes: ptr("late")}, as("agent-2", domain.RoleAgent))
	if !errors.Is(err, domain.ErrScheduleBusy) {
		t.Fatalf("expected ErrScheduleBusy, got %v", err)
	}
	if f.appointments.byID[a.ID].Notes != "" {
		t.Error("nothing may be written without the lock")
	}
}

func TestAppointmentService_Update_Validation(t *testing.T) {
	cases := map[string]ports.UpdateAppointmentInput{
		"duration too short": {DurationMinutes: ptr(5)},
		"duration too long":  {DurationMinutes: ptr(300)},
		"unknown status":     {Status: ptr("archived")},
		"zero date":          {AppointmentDate: ptr(time.Time{})},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			a := mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))

			if _, err := f.svc.Update(context.Background(), a.ID, in, as("agent-2", domain.RoleAgent)); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAppointmentService_Update_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Update(context.Background(), "nope", ports.UpdateAppointmentInput{}, as("admin-1", domain.RoleAdmin))
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestAppointmentService_Remove(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))

	if err := f.svc.Remove(context.Background(), a.ID, as("agent-3", domain.RoleAgent)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := f.appointments.byID[a.ID]; !ok {
		t.Fatal("forbidden delete must keep the appointment")
	}

	if err := f.svc.Remove(context.Background(), a.ID, as("owner-1", domain.RoleAgent)); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := f.appointments.byID[a.ID]; ok {
		t.Fatal("appointment must be removed permanently")
	}

	if err := f.svc.Remove(context.Background(), a.ID, as("admin-1", domain.RoleAdmin)); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound on second delete, got %v", err)
	}
}

func TestAppointmentService_Remove_FreesSlot(t *testing.T) {
	f := newFixture()
	a := mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))

	if err := f.svc.Remove(context.Background(), a.ID, as("client-1", domain.RoleClient)); err != nil {
		t.Fatalf("creator delete failed: %v", err)
	}
	mustCreate(t, f, "prop-1", booking(slot, 60), as("client-1", domain.RoleClient))
}

// ---------------------------------------------------------------------------
// FindAll / FindByAgent
// ---------------------------------------------------------------------------

func seedSchedule(t *testing.T, f *fixture, propertyID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		mustCreate(t, f, propertyID, booking(slot.Add(time.Duration(i)*2*time.Hour), 60), as("agent-2", domain.RoleAgent))
	}
}

func TestAppointmentService_FindAll_Pagination(t *testing.T) {
	f := newFixture()
	seedSchedule(t, f, "prop-1", 15)

	page, err := f.svc.FindAll(context.Background(), "prop-1", ports.ListAppointmentsInput{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 5 {
		t.Errorf("expected 5 items on page 2, got %d", len(page.Items))
	}
	if page.Total != 15 || page.TotalPages != 2 || page.Page != 2 || page.Limit != 10 {
		t.Errorf("unexpected meta: total=%d pages=%d page=%d limit=%d", page.Total, page.TotalPages, page.Page, page.Limit)
	}
}

func TestAppointmentService_FindAll_Defaults(t *testing.T) {
	f := newFixture()
	seedSchedule(t, f, "prop-1", 3)

	page, err := f.svc.FindAll(context.Background(), "prop-1", ports.ListAppointmentsInput{SortBy: "password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := f.appointments.lastQuery
	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected page=1 limit=10, got page=%d limit=%d", q.Page, q.Limit)
	}
	if q.SortBy != ports.SortAppointmentDate || q.SortOrder != ports.SortDesc {
		t.Errorf("expected appointmentDate DESC, got %s %s", q.SortBy, q.SortOrder)
	}
	if q.PropertyID != "prop-1" {
		t.Errorf("query must be scoped to the property, got %q", q.PropertyID)
	}
	if len(page.Items) != 3 || !page.Items[0].AppointmentDate.After(page.Items[2].AppointmentDate) {
		t.Error("expected newest first")
	}
}

func TestAppointmentService_FindAll_Filters(t *testing.T) {
	f := newFixture()
	seedSchedule(t, f, "prop-1", 4)
	in := booking(slot.Add(-48*time.Hour), 60)
	in.ClientName = "Maria Petrova"
	in.ClientEmail = "maria@example.com"
	in.Status = string(domain.StatusConfirmed)
	mustCreate(t, f, "prop-1", in, as("agent-2", domain.RoleAgent))

	page, err := f.svc.FindAll(context.Background(), "prop-1", ports.ListAppointmentsInput{Search: "MARIA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("search: expected 1 match, got %d", page.Total)
	}

	page, _ = f.svc.FindAll(context.Background(), "prop-1", ports.ListAppointmentsInput{
		Status:    string(domain.StatusPending),
		StartDate: slot,
		EndDate:   slot.Add(2 * time.Hour),
	})
	if page.Total != 2 {
		t.Errorf("status+range: expected 2 matches (inclusive bounds), got %d", page.Total)
	}
}

func TestAppointmentService_FindAll_InvalidQuery(t *testing.T) {
	f := newFixture()
	cases := map[string]ports.ListAppointmentsInput{
		"negative page":  {Page: -1},
		"limit too big":  {Limit: 101},
		"negative limit": {Limit: -5},
		"inverted range": {StartDate: slot.Add(time.Hour), EndDate: slot},
		"unknown status": {Status: "archived"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := f.svc.FindAll(context.Background(), "prop-1", in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAppointmentService_FindAll_PropertyNotFound(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.FindAll(context.Background(), "missing", ports.ListAppointmentsInput{}); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestAppointmentService_FindByAgent(t *testing.T) {
	f := newFixture()
	mustCreate(t, f, "prop-1", booking(slot, 60), as("agent-2", domain.RoleAgent))
	mustCreate(t, f, "prop-2", booking(slot, 60), as("agent-2", domain.RoleAgent))
	mustCreate(t, f, "prop-2", booking(slot.Add(3*time.Hour), 60), as("agent-3", domain.RoleAgent))

	page, err := f.svc.FindByAgent(context.Background(), "agent-2", ports.ListAppointmentsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("expected 2 appointments for agent-2, got %d", page.Total)
	}
	if f.appointments.lastQuery.AgentID != "agent-2" || f.appointments.lastQuery.PropertyID != "" {
		t.Errorf("unexpected scope: %+v", f.appointments.lastQuery)
	}

	if _, err := f.svc.FindByAgent(context.Background(), "ghost", ports.ListAppointmentsInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{100, 100, 1},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d): want %d, got %d", tc.total, tc.limit, tc.want, got)
		}
	}
}

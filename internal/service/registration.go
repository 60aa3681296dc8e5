package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/metrics"
	"github.com/keeperschule/booking-api/internal/repository"
)

var (
	ErrEventNotFound         = repository.ErrEventNotFound
	ErrParticipationNotFound = repository.ErrParticipationNotFound
)

type RegistrationRepository interface {
	FindHeaders(ctx context.Context, guardianID uint, eventIDs []uint) ([]domain.RegistrationHeader, error)
	CreateHeaders(ctx context.Context, headers []domain.RegistrationHeader) ([]domain.RegistrationHeader, error)
	FindParticipations(ctx context.Context, headerIDs, keeperIDs []uint) ([]domain.ParticipationRecord, error)
	CreateParticipations(ctx context.Context, records []domain.ParticipationRecord) ([]domain.ParticipationRecord, error)
	UpdateStatuses(ctx context.Context, updates map[uint]domain.Status) error
	FindParticipationByID(ctx context.Context, id uint) (domain.ParticipationRecord, error)
	FindHeaderByID(ctx context.Context, id uint) (domain.RegistrationHeader, error)
}

type RegistrationEventRepository interface {
	FindOpenByKind(ctx context.Context, kind domain.EventKind, from time.Time) ([]domain.Event, error)
}

type RegistrationKeeperRepository interface {
	FindByGuardianID(ctx context.Context, guardianID uint) ([]domain.Keeper, error)
}

type RegistrationGuardianRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Guardian, error)
}

// CampNotice carries everything the office notification needs after a new
// camp registration.
type CampNotice struct {
	Guardian domain.ContactSnapshot
	Event    domain.Event
	Keepers  []domain.Keeper
}

// CampNotifier is called fire-and-forget after a successful camp header
// insert. Failures are logged, never surfaced.
type CampNotifier interface {
	NotifyCampRegistration(ctx context.Context, notice CampNotice) error
}

// StatusUpdate is pushed to the guardian's registration feed after persisted
// state changed.
type StatusUpdate struct {
	EventID  uint          `json:"event_id"`
	KeeperID uint          `json:"keeper_id"`
	Status   domain.Status `json:"status"`
}

// StatusPublisher delivers status updates to connected feed clients.
// Best-effort; delivery is not guaranteed.
type StatusPublisher interface {
	Publish(guardianID uint, updates []StatusUpdate)
}

// Overview is the registration page state for one guardian and one event
// kind: the open events, the guardian's keepers, and the derived matrix.
type Overview struct {
	Events  []domain.Event
	Keepers []domain.Keeper
	State   domain.RegistrationState
}

// RegistrationService runs the state loader and the reconciliation engine.
// One instance serves every event kind; the camp notification hook only
// fires for camps.
type RegistrationService struct {
	repo         RegistrationRepository
	eventRepo    RegistrationEventRepository
	keeperRepo   RegistrationKeeperRepository
	guardianRepo RegistrationGuardianRepository
	notifier     CampNotifier
	publisher    StatusPublisher
	metrics      *metrics.Metrics
}

func NewRegistrationService(
	repo RegistrationRepository,
	eventRepo RegistrationEventRepository,
	keeperRepo RegistrationKeeperRepository,
	guardianRepo RegistrationGuardianRepository,
	notifier CampNotifier,
	publisher StatusPublisher,
	m *metrics.Metrics,
) *RegistrationService {
	return &RegistrationService{
		repo:         repo,
		eventRepo:    eventRepo,
		keeperRepo:   keeperRepo,
		guardianRepo: guardianRepo,
		notifier:     notifier,
		publisher:    publisher,
		metrics:      m,
	}
}

// LoadState fetches headers and participation records for the scope in two
// batched reads and derives the status map. Read-only.
func (s *RegistrationService) LoadState(ctx context.Context, guardianID uint, eventIDs, keeperIDs []uint) (domain.RegistrationState, error) {
	state := domain.NewRegistrationState()

	headers, err := s.repo.FindHeaders(ctx, guardianID, eventIDs)
	if err != nil {
		return domain.RegistrationState{}, fmt.Errorf("s.repo.FindHeaders -> %w", err)
	}

	headerIDs := make([]uint, len(headers))
	for i, h := range headers {
		state.HeaderByEvent[h.EventID] = h
		headerIDs[i] = h.ID
	}

	records, err := s.repo.FindParticipations(ctx, headerIDs, keeperIDs)
	if err != nil {
		return domain.RegistrationState{}, fmt.Errorf("s.repo.FindParticipations -> %w", err)
	}

	for _, rec := range records {
		state.AddRecord(rec)
	}

	return state, nil
}

// Page loads the registration overview for one event kind. A load failure
// propagates; the handler renders it as a page-level error with an empty
// matrix.
func (s *RegistrationService) Page(ctx context.Context, guardianID uint, kind domain.EventKind) (Overview, error) {
	events, err := s.eventRepo.FindOpenByKind(ctx, kind, startOfToday())
	if err != nil {
		return Overview{}, fmt.Errorf("s.eventRepo.FindOpenByKind -> %w", err)
	}

	keepers, err := s.keeperRepo.FindByGuardianID(ctx, guardianID)
	if err != nil {
		return Overview{}, fmt.Errorf("s.keeperRepo.FindByGuardianID -> %w", err)
	}

	state, err := s.LoadState(ctx, guardianID, eventIDs(events), keeperIDs(keepers))
	if err != nil {
		return Overview{}, fmt.Errorf("s.LoadState -> %w", err)
	}

	return Overview{Events: events, Keepers: keepers, State: state}, nil
}

// Save reconciles the guardian's selection matrix against persisted state.
// selections maps event id to keeper id to the wanted checked flag; absent
// cells count as unchecked. The whole run is sequential: load, diff, batched
// writes, reload. Re-running with an unchanged matrix writes nothing.
func (s *RegistrationService) Save(ctx context.Context, guardianID uint, kind domain.EventKind, selections map[uint]map[uint]bool) (Overview, error) {
	overview, err := s.save(ctx, guardianID, kind, selections)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.RegistrationSaves.WithLabelValues(string(kind), outcome).Inc()

	return overview, err
}

func (s *RegistrationService) save(ctx context.Context, guardianID uint, kind domain.EventKind, selections map[uint]map[uint]bool) (Overview, error) {
	guardian, err := s.guardianRepo.FindByID(ctx, guardianID)
	if err != nil {
		return Overview{}, fmt.Errorf("s.guardianRepo.FindByID -> %w", err)
	}

	events, err := s.eventRepo.FindOpenByKind(ctx, kind, startOfToday())
	if err != nil {
		return Overview{}, fmt.Errorf("s.eventRepo.FindOpenByKind -> %w", err)
	}

	keepers, err := s.keeperRepo.FindByGuardianID(ctx, guardianID)
	if err != nil {
		return Overview{}, fmt.Errorf("s.keeperRepo.FindByGuardianID -> %w", err)
	}

	state, err := s.LoadState(ctx, guardianID, eventIDs(events), keeperIDs(keepers))
	if err != nil {
		// Diffing against a partial view could duplicate rows, so a failed
		// load aborts the save instead of being treated as empty.
		return Overview{}, fmt.Errorf("s.LoadState -> %w", err)
	}

	matrix := buildMatrix(events, keepers, state, selections)

	newHeaders, err := s.ensureHeaders(ctx, guardian, events, keepers, state, matrix)
	if err != nil {
		return Overview{}, err
	}

	inserts, updates := diffParticipations(events, keepers, state, matrix)

	created, err := s.repo.CreateParticipations(ctx, inserts)
	if err != nil {
		return Overview{}, fmt.Errorf("s.repo.CreateParticipations -> %w", err)
	}
	s.metrics.ParticipationInserts.Add(float64(len(created)))

	if err = s.repo.UpdateStatuses(ctx, updates); err != nil {
		// Committed header and insert work above stays committed; the next
		// successful save converges because every step is get-or-create.
		return Overview{}, fmt.Errorf("s.repo.UpdateStatuses -> %w", err)
	}
	s.metrics.ParticipationUpdates.Add(float64(len(updates)))

	if kind == domain.EventCamp && len(newHeaders) > 0 {
		s.notifyCampRegistrations(guardian, events, keepers, newHeaders, created)
	}

	s.publishUpdates(guardianID, events, created, updates, state)

	reloaded, err := s.LoadState(ctx, guardianID, eventIDs(events), keeperIDs(keepers))
	if err != nil {
		return Overview{}, fmt.Errorf("s.LoadState -> %w", err)
	}

	return Overview{Events: events, Keepers: keepers, State: reloaded}, nil
}

// ensureHeaders creates the missing headers for every event that has at
// least one checked cell, in one batched insert, and indexes them into the
// state. Events nobody selected never get a header.
func (s *RegistrationService) ensureHeaders(
	ctx context.Context,
	guardian domain.Guardian,
	events []domain.Event,
	keepers []domain.Keeper,
	state domain.RegistrationState,
	matrix *domain.SelectionMatrix,
) ([]domain.RegistrationHeader, error) {
	var missing []domain.RegistrationHeader

	for _, event := range events {
		if _, ok := state.HeaderByEvent[event.ID]; ok {
			continue
		}

		if !anyChecked(matrix, event.ID, keepers) {
			continue
		}

		missing = append(missing, domain.RegistrationHeader{
			EventID:   event.ID,
			CreatorID: guardian.ID,
			Contact:   guardian.Snapshot(),
		})
	}

	if len(missing) == 0 {
		return nil, nil
	}

	created, err := s.repo.CreateHeaders(ctx, missing)
	if err != nil {
		// No participation work may run without complete header coverage.
		return nil, fmt.Errorf("s.repo.CreateHeaders -> %w", err)
	}

	for _, h := range created {
		state.HeaderByEvent[h.EventID] = h
	}
	s.metrics.HeadersCreated.Add(float64(len(created)))

	return created, nil
}

// diffParticipations computes the minimal insert and update sets that make
// persisted state match the matrix. Keepers without a persisted id never
// reach this point; the keeper repository only returns persisted rows.
func diffParticipations(
	events []domain.Event,
	keepers []domain.Keeper,
	state domain.RegistrationState,
	matrix *domain.SelectionMatrix,
) ([]domain.ParticipationRecord, map[uint]domain.Status) {
	var inserts []domain.ParticipationRecord
	updates := make(map[uint]domain.Status)

	for _, event := range events {
		header, hasHeader := state.HeaderByEvent[event.ID]

		for _, keeper := range keepers {
			if !keeper.Persisted() {
				continue
			}

			checked := matrix.Checked(event.ID, keeper.ID)
			desired := matrix.Desired(event.ID, keeper.ID)
			if checked && desired == domain.StatusNone {
				desired = domain.StatusSubmitted
			}

			existing, exists := state.Record(event.ID, keeper.ID)

			if checked {
				if !exists {
					if !hasHeader {
						continue
					}
					inserts = append(inserts, domain.ParticipationRecord{
						HeaderID: header.ID,
						KeeperID: keeper.ID,
						Status:   desired,
					})
					continue
				}
				if existing.Status != desired {
					updates[existing.ID] = desired
				}
				continue
			}

			if exists && existing.Status != domain.StatusCancelled {
				updates[existing.ID] = domain.StatusCancelled
			}
		}
	}

	return inserts, updates
}

// buildMatrix seeds every cell from persisted status, then drives it to the
// requested checked flag through the toggle contract. Confirmed cells stay
// locked no matter what the request says.
func buildMatrix(
	events []domain.Event,
	keepers []domain.Keeper,
	state domain.RegistrationState,
	selections map[uint]map[uint]bool,
) *domain.SelectionMatrix {
	matrix := domain.NewSelectionMatrix()

	for _, event := range events {
		for _, keeper := range keepers {
			matrix.Seed(event.ID, keeper.ID, state.StatusOf(event.ID, keeper.ID))
			matrix.Set(event.ID, keeper.ID, selections[event.ID][keeper.ID])
		}
	}

	return matrix
}

func (s *RegistrationService) notifyCampRegistrations(
	guardian domain.Guardian,
	events []domain.Event,
	keepers []domain.Keeper,
	newHeaders []domain.RegistrationHeader,
	created []domain.ParticipationRecord,
) {
	if s.notifier == nil {
		return
	}

	keeperByID := make(map[uint]domain.Keeper, len(keepers))
	for _, k := range keepers {
		keeperByID[k.ID] = k
	}
	eventByID := make(map[uint]domain.Event, len(events))
	for _, e := range events {
		eventByID[e.ID] = e
	}

	for _, header := range newHeaders {
		var registered []domain.Keeper
		for _, rec := range created {
			if rec.HeaderID == header.ID && rec.Status.Selected() {
				registered = append(registered, keeperByID[rec.KeeperID])
			}
		}
		if len(registered) == 0 {
			continue
		}

		notice := CampNotice{
			Guardian: header.Contact,
			Event:    eventByID[header.EventID],
			Keepers:  registered,
		}

		go func() {
			if err := s.notifier.NotifyCampRegistration(context.Background(), notice); err != nil {
				zap.L().Warn("camp registration notification failed",
					zap.Uint("event_id", notice.Event.ID),
					zap.Error(err))
			}
		}()
	}
}

func (s *RegistrationService) publishUpdates(
	guardianID uint,
	events []domain.Event,
	created []domain.ParticipationRecord,
	updates map[uint]domain.Status,
	state domain.RegistrationState,
) {
	if s.publisher == nil {
		return
	}

	headerToEvent := make(map[uint]uint, len(state.HeaderByEvent))
	for eventID, header := range state.HeaderByEvent {
		headerToEvent[header.ID] = eventID
	}

	var out []StatusUpdate
	for _, rec := range created {
		out = append(out, StatusUpdate{
			EventID:  headerToEvent[rec.HeaderID],
			KeeperID: rec.KeeperID,
			Status:   rec.Status,
		})
	}
	for _, byKeeper := range state.Records {
		for _, rec := range byKeeper {
			if status, ok := updates[rec.ID]; ok {
				out = append(out, StatusUpdate{
					EventID:  headerToEvent[rec.HeaderID],
					KeeperID: rec.KeeperID,
					Status:   status,
				})
			}
		}
	}

	if len(out) > 0 {
		s.publisher.Publish(guardianID, out)
	}
}

// AdminSetStatus lets an administrator advance one participation record to
// any status, bypassing the guardian toggle contract. The owning guardian's
// feed is notified.
func (s *RegistrationService) AdminSetStatus(ctx context.Context, participationID uint, status domain.Status) (domain.ParticipationRecord, error) {
	record, err := s.repo.FindParticipationByID(ctx, participationID)
	if err != nil {
		return domain.ParticipationRecord{}, fmt.Errorf("s.repo.FindParticipationByID -> %w", err)
	}

	if record.Status != status {
		if err = s.repo.UpdateStatuses(ctx, map[uint]domain.Status{record.ID: status}); err != nil {
			return domain.ParticipationRecord{}, fmt.Errorf("s.repo.UpdateStatuses -> %w", err)
		}
		s.metrics.ParticipationUpdates.Inc()
		record.Status = status
	}

	header, err := s.repo.FindHeaderByID(ctx, record.HeaderID)
	if err != nil {
		return domain.ParticipationRecord{}, fmt.Errorf("s.repo.FindHeaderByID -> %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(header.CreatorID, []StatusUpdate{{
			EventID:  header.EventID,
			KeeperID: record.KeeperID,
			Status:   record.Status,
		}})
	}

	return record, nil
}

func eventIDs(events []domain.Event) []uint {
	ids := make([]uint, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func keeperIDs(keepers []domain.Keeper) []uint {
	ids := make([]uint, len(keepers))
	for i, k := range keepers {
		ids[i] = k.ID
	}
	return ids
}

func anyChecked(matrix *domain.SelectionMatrix, eventID uint, keepers []domain.Keeper) bool {
	for _, k := range keepers {
		if matrix.Checked(eventID, k.ID) {
			return true
		}
	}
	return false
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

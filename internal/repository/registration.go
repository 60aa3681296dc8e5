package repository

import (
	"context"
	"fmt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository/dao"
)

var (
	ErrHeaderExists          = dao.ErrHeaderExists
	ErrHeaderNotFound        = dao.ErrHeaderNotFound
	ErrParticipationExists   = dao.ErrParticipationExists
	ErrParticipationNotFound = dao.ErrParticipationNotFound
)

type RegistrationDAO interface {
	FindHeaders(ctx context.Context, guardianID uint, eventIDs []uint) ([]dao.RegistrationHeader, error)
	InsertHeaders(ctx context.Context, headers []dao.RegistrationHeader) ([]dao.RegistrationHeader, error)
	FindParticipations(ctx context.Context, headerIDs, keeperIDs []uint) ([]dao.ParticipationRecord, error)
	InsertParticipations(ctx context.Context, records []dao.ParticipationRecord) ([]dao.ParticipationRecord, error)
	UpdateParticipationStatuses(ctx context.Context, updates []dao.ParticipationStatusUpdate) error
	FindParticipationByID(ctx context.Context, id uint) (dao.ParticipationRecord, error)
	FindHeaderByID(ctx context.Context, id uint) (dao.RegistrationHeader, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) FindHeaders(ctx context.Context, guardianID uint, eventIDs []uint) ([]domain.RegistrationHeader, error) {
	found, err := r.dao.FindHeaders(ctx, guardianID, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHeaders -> %w", err)
	}

	headers := make([]domain.RegistrationHeader, len(found))
	for i, h := range found {
		headers[i] = r.headerDaoToDomain(h)
	}

	return headers, nil
}

func (r *RegistrationRepository) CreateHeaders(ctx context.Context, headers []domain.RegistrationHeader) ([]domain.RegistrationHeader, error) {
	daoHeaders := make([]dao.RegistrationHeader, len(headers))
	for i, h := range headers {
		daoHeaders[i] = r.headerDomainToDao(h)
	}

	created, err := r.dao.InsertHeaders(ctx, daoHeaders)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertHeaders -> %w", err)
	}

	result := make([]domain.RegistrationHeader, len(created))
	for i, h := range created {
		result[i] = r.headerDaoToDomain(h)
	}

	return result, nil
}

func (r *RegistrationRepository) FindParticipations(ctx context.Context, headerIDs, keeperIDs []uint) ([]domain.ParticipationRecord, error) {
	found, err := r.dao.FindParticipations(ctx, headerIDs, keeperIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipations -> %w", err)
	}

	records := make([]domain.ParticipationRecord, len(found))
	for i, p := range found {
		records[i] = r.participationDaoToDomain(p)
	}

	return records, nil
}

func (r *RegistrationRepository) CreateParticipations(ctx context.Context, records []domain.ParticipationRecord) ([]domain.ParticipationRecord, error) {
	daoRecords := make([]dao.ParticipationRecord, len(records))
	for i, p := range records {
		daoRecords[i] = dao.ParticipationRecord{
			HeaderID: p.HeaderID,
			KeeperID: p.KeeperID,
			Status:   string(p.Status),
		}
	}

	created, err := r.dao.InsertParticipations(ctx, daoRecords)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertParticipations -> %w", err)
	}

	result := make([]domain.ParticipationRecord, len(created))
	for i, p := range created {
		result[i] = r.participationDaoToDomain(p)
	}

	return result, nil
}

func (r *RegistrationRepository) UpdateStatuses(ctx context.Context, updates map[uint]domain.Status) error {
	daoUpdates := make([]dao.ParticipationStatusUpdate, 0, len(updates))
	for id, status := range updates {
		daoUpdates = append(daoUpdates, dao.ParticipationStatusUpdate{
			ID:     id,
			Status: string(status),
		})
	}

	if err := r.dao.UpdateParticipationStatuses(ctx, daoUpdates); err != nil {
		return fmt.Errorf("r.dao.UpdateParticipationStatuses -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) FindParticipationByID(ctx context.Context, id uint) (domain.ParticipationRecord, error) {
	found, err := r.dao.FindParticipationByID(ctx, id)
	if err != nil {
		return domain.ParticipationRecord{}, fmt.Errorf("r.dao.FindParticipationByID -> %w", err)
	}

	return r.participationDaoToDomain(found), nil
}

func (r *RegistrationRepository) FindHeaderByID(ctx context.Context, id uint) (domain.RegistrationHeader, error) {
	found, err := r.dao.FindHeaderByID(ctx, id)
	if err != nil {
		return domain.RegistrationHeader{}, fmt.Errorf("r.dao.FindHeaderByID -> %w", err)
	}

	return r.headerDaoToDomain(found), nil
}

func (r *RegistrationRepository) headerDomainToDao(h domain.RegistrationHeader) dao.RegistrationHeader {
	return dao.RegistrationHeader{
		ID:           h.ID,
		EventID:      h.EventID,
		CreatorID:    h.CreatorID,
		ContactName:  h.Contact.Name,
		ContactEmail: h.Contact.Email,
		ContactPhone: h.Contact.Phone,
	}
}

func (r *RegistrationRepository) headerDaoToDomain(h dao.RegistrationHeader) domain.RegistrationHeader {
	return domain.RegistrationHeader{
		ID:        h.ID,
		EventID:   h.EventID,
		CreatorID: h.CreatorID,
		Contact: domain.ContactSnapshot{
			Name:  h.ContactName,
			Email: h.ContactEmail,
			Phone: h.ContactPhone,
		},
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (r *RegistrationRepository) participationDaoToDomain(p dao.ParticipationRecord) domain.ParticipationRecord {
	return domain.ParticipationRecord{
		ID:        p.ID,
		HeaderID:  p.HeaderID,
		KeeperID:  p.KeeperID,
		Status:    domain.ParseStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

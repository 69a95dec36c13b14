package usecase

import (
	"context"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/entity"
	"ayursutra/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RevenueUsecase reads the two append-only ledgers. A therapist sees only
// their own entries, a doctor only theirs; every other role sees all.
type RevenueUsecase interface {
	TherapistLedger(ctx context.Context, principal entity.Principal) ([]dto.TherapistRevenueResponse, error)
	DoctorLedger(ctx context.Context, principal entity.Principal) ([]dto.DoctorRevenueResponse, error)
}

type revenueUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	revenueRepo repository.RevenueRepository
}

func NewRevenueUsecase(db *gorm.DB, log *logrus.Logger, revenueRepo repository.RevenueRepository) RevenueUsecase {
	return &revenueUsecase{
		db:          db,
		log:         log,
		revenueRepo: revenueRepo,
	}
}

func (u *revenueUsecase) TherapistLedger(ctx context.Context, principal entity.Principal) ([]dto.TherapistRevenueResponse, error) {
	entries, err := u.revenueRepo.FindTherapistEntries(u.db.WithContext(ctx), principal.TherapistRevenueFilter())
	if err != nil {
		u.log.Warnf("Failed to read therapist ledger: %+v", err)
		return nil, err
	}
	return converter.TherapistRevenuesToResponses(entries), nil
}

func (u *revenueUsecase) DoctorLedger(ctx context.Context, principal entity.Principal) ([]dto.DoctorRevenueResponse, error) {
	entries, err := u.revenueRepo.FindDoctorEntries(u.db.WithContext(ctx), principal.DoctorRevenueFilter())
	if err != nil {
		u.log.Warnf("Failed to read doctor ledger: %+v", err)
		return nil, err
	}
	return converter.DoctorRevenuesToResponses(entries), nil
}

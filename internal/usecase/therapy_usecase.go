package usecase

import (
	"context"

	"ayursutra/internal/converter"
	"ayursutra/internal/delivery/dto"
	"ayursutra/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TherapyUsecase is the read-only catalog surface. Therapies are seeded at
// boot and never written through the API.
type TherapyUsecase interface {
	List(ctx context.Context) ([]dto.TherapyResponse, error)
}

type therapyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	therapyRepo repository.TherapyRepository
}

func NewTherapyUsecase(db *gorm.DB, log *logrus.Logger, therapyRepo repository.TherapyRepository) TherapyUsecase {
	return &therapyUsecase{
		db:          db,
		log:         log,
		therapyRepo: therapyRepo,
	}
}

func (u *therapyUsecase) List(ctx context.Context) ([]dto.TherapyResponse, error) {
	therapies, err := u.therapyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list therapies: %+v", err)
		return nil, err
	}
	return converter.TherapiesToResponses(therapies), nil
}

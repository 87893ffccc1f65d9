package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
	booking "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetProfessionalByProfile(
	ctx context.Context,
	profileID uint,
) (*models.ProfessionalInfo, error) {

	var pro models.ProfessionalInfo
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pro, nil
}

func (r *AvailabilityGormRepository) GetProfileForProfessional(
	ctx context.Context,
	professionalInfoID uint,
) (*models.Profile, error) {

	var pro models.ProfessionalInfo
	if err := r.db.WithContext(ctx).First(&pro, professionalInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, pro.ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Real-time status
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetStatus(
	ctx context.Context,
	professionalInfoID uint,
) (*models.RealTimeStatus, error) {

	var st models.RealTimeStatus
	if err := r.db.WithContext(ctx).
		Where("professional_info_id = ?", professionalInfoID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *AvailabilityGormRepository) GetStatusByProfile(
	ctx context.Context,
	profileID uint,
) (*models.RealTimeStatus, error) {

	var st models.RealTimeStatus
	err := r.db.WithContext(ctx).
		Joins("JOIN professional_infos ON professional_infos.id = real_time_statuses.professional_info_id").
		Where("professional_infos.profile_id = ?", profileID).
		First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *AvailabilityGormRepository) CreateStatus(
	ctx context.Context,
	st *models.RealTimeStatus,
) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *AvailabilityGormRepository) UpdateStatus(
	ctx context.Context,
	st *models.RealTimeStatus,
) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *AvailabilityGormRepository) DeleteStatusesForProfessional(
	ctx context.Context,
	professionalInfoID uint,
) error {
	return r.db.WithContext(ctx).
		Where("professional_info_id = ?", professionalInfoID).
		Delete(&models.RealTimeStatus{}).Error
}

func (r *AvailabilityGormRepository) ResetProfessionalAvailability(
	ctx context.Context,
	professionalInfoID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.ProfessionalInfo{}).
		Where("id = ?", professionalInfoID).
		Update("availability", "{}").Error
}

func (r *AvailabilityGormRepository) ListStatuses(
	ctx context.Context,
) ([]models.RealTimeStatus, error) {

	var statuses []models.RealTimeStatus
	if err := r.db.WithContext(ctx).
		Order("professional_info_id ASC").
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

func (r *AvailabilityGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	profileID uint,
	from time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"profile_id = ? AND time >= ? AND status <> ?",
			profileID, from, string(booking.StatusCancelled),
		).
		Order("time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)

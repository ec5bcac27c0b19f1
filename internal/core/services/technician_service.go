package services

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

type TechnicianService struct {
	technicianStore  out.TechnicianStorePort
	appointmentStore out.AppointmentStorePort
	uploader         out.ImageUploaderPort
	logger           out.LoggerPort
}

func NewTechnicianService(
	technicianStore out.TechnicianStorePort,
	appointmentStore out.AppointmentStorePort,
	uploader out.ImageUploaderPort,
	logger out.LoggerPort,
) *TechnicianService {
	return &TechnicianService{
		technicianStore:  technicianStore,
		appointmentStore: appointmentStore,
		uploader:         uploader,
		logger:           logger.WithModule("TechnicianService"),
	}
}

func (s *TechnicianService) Get(ctx context.Context, id string) (*domain.Technician, error) {
	return s.technicianStore.GetByID(ctx, id)
}

// SetAvailability - выключить доступность нельзя, пока за техником
// числятся незакрытые обязательства. Идущий ремонт важнее ожидающих
// заявок, поэтому проверяется первым - у ошибок разные подсказки.
func (s *TechnicianService) SetAvailability(ctx context.Context, id string, available bool) error {
	if !available {
		inProgress, err := s.appointmentStore.CountByTechnicianAndStatus(ctx, id, []domain.AppointmentStatus{
			domain.AppointmentStatusRepairing,
			domain.AppointmentStatusTesting,
		})
		if err != nil {
			return err
		}
		if inProgress > 0 {
			s.logger.Warn("technician.availability.blocked", out.LogFields{
				"technicianId": id,
				"reason":       "ongoing repairs",
			})
			return domain.ErrOngoingRepair
		}

		pending, err := s.appointmentStore.CountByTechnicianAndStatus(ctx, id, []domain.AppointmentStatus{
			domain.AppointmentStatusScheduled,
			domain.AppointmentStatusAccepted,
		})
		if err != nil {
			return err
		}
		if pending > 0 {
			s.logger.Warn("technician.availability.blocked", out.LogFields{
				"technicianId": id,
				"reason":       "pending or accepted appointments",
			})
			return domain.ErrPendingAppointments
		}
	}

	if err := s.technicianStore.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	s.logger.Info("technician.availability.changed", out.LogFields{
		"technicianId": id,
		"available":    available,
	})

	return nil
}

// SetPhoto загружает фото на внешний хостинг и сохраняет URL в профиле
func (s *TechnicianService) SetPhoto(ctx context.Context, id string, filename string, data []byte) (string, error) {
	url, err := s.uploader.Upload(ctx, filename, data)
	if err != nil {
		s.logger.Error("technician.photo.upload_failed", out.LogFields{
			"technicianId": id,
			"error":        err.Error(),
		})
		return "", err
	}

	if err := s.technicianStore.SetPhotoURL(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}

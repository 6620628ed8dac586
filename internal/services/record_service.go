package services

import (
	"gorm.io/gorm"

	"record-tracker/internal/models"
)

// RecordService provides methods to store and list submitted records.
type RecordService interface {
	// Create persists a record for the given user. The remaining value is
	// computed here, once, and stored.
	Create(userID uint, input, output float64, note string) (*models.Record, error)
	// ListByUser retrieves the user's own records, newest first.
	ListByUser(userID uint) ([]models.Record, error)
	// ListAllWithOwner retrieves every record joined with its owner's
	// identity, newest first.
	ListAllWithOwner() ([]models.RecordWithOwner, error)
}

// recordService is the implementation of the RecordService interface
type recordService struct {
	db *gorm.DB
}

// NewRecordService creates a new instance of RecordService
func NewRecordService(db *gorm.DB) RecordService {
	return &recordService{db: db}
}

func (s *recordService) Create(userID uint, input, output float64, note string) (*models.Record, error) {
	record := &models.Record{
		UserID:         userID,
		InputValue:     input,
		OutputValue:    output,
		RemainingValue: input - output,
		Note:           note,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordService) ListByUser(userID uint) ([]models.Record, error) {
	var records []models.Record
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *recordService) ListAllWithOwner() ([]models.RecordWithOwner, error) {
	var rows []models.RecordWithOwner
	err := s.db.
		Table("records").
		Select("records.id AS record_id, users.name AS user_name, users.email AS user_email, records.input_value, records.output_value, records.remaining_value, records.note, records.created_at").
		Joins("JOIN users ON users.id = records.user_id").
		Order("records.created_at DESC, records.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

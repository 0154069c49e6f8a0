package repository

import (
	"github.com/musickeys/backend/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a GORM-backed channel catalog repository.
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(channel *models.Channel) error {
	return r.db.Create(channel).Error
}

func (r *channelRepository) GetByID(id string) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("id = ?", id).First(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepository) List() ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.Order("created_at ASC").Find(&channels).Error
	return channels, err
}

func (r *channelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}

func (r *channelRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Channel{}).Error
}

type downloadFileRepository struct {
	db *gorm.DB
}

// NewDownloadFileRepository creates a GORM-backed download catalog repository.
func NewDownloadFileRepository(db *gorm.DB) DownloadFileRepository {
	return &downloadFileRepository{db: db}
}

func (r *downloadFileRepository) GetByFileKey(fileKey string) (*models.DownloadFile, error) {
	var file models.DownloadFile
	if err := r.db.Where("file_key = ? AND is_active = ?", fileKey, true).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *downloadFileRepository) List() ([]models.DownloadFile, error) {
	var files []models.DownloadFile
	err := r.db.Where("is_active = ?", true).Order("file_key ASC").Find(&files).Error
	return files, err
}

func (r *downloadFileRepository) Upsert(file *models.DownloadFile) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "file_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"file_name",
			"object_key",
			"fallback_url",
			"required_plan",
			"is_active",
			"updated_at",
		}),
	}).Create(file).Error; err != nil {
		return err
	}
	return r.db.Where("file_key = ?", file.FileKey).First(file).Error
}

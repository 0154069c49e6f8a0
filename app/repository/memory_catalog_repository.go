package repository

import (
	"sync"

	"github.com/musickeys/backend/app/models"
	"gorm.io/gorm"
)

// memoryChannelRepository backs the channel catalog when running without a
// database, pre-seeded with the curated channels.
type memoryChannelRepository struct {
	mu       sync.RWMutex
	channels []models.Channel
}

// NewMemoryChannelRepository creates an in-memory channel repository with the
// default channel catalog.
func NewMemoryChannelRepository() ChannelRepository {
	return &memoryChannelRepository{channels: defaultChannels()}
}

func defaultChannels() []models.Channel {
	return []models.Channel{
		{ID: "UCJ5v_MCY6GNUBTO8o3knCvw", Title: "Dany Unique Official", Username: "danyuniqueofficial", URL: "https://www.youtube.com/@danyuniqueofficial", IsActive: true, VideoCount: 150},
		{ID: "UC8R8Kp_e1PMwPlgtYlRnCGA", Title: "Bhanu Pala", Username: "bhanupala2600", URL: "https://www.youtube.com/@bhanupala2600", IsActive: true, VideoCount: 89},
		{ID: "UCQhKdjJx6WJYL7Xjz_9_8vQ", Title: "Sandies Music", Username: "sandiesmusic", URL: "https://www.youtube.com/@sandiesmusic", IsActive: true, VideoCount: 234},
		{ID: "UC2XdaAVUannpueHwXmOquZg", Title: "Noel Jyothi", Username: "noeljyothi", URL: "https://www.youtube.com/@noeljyothi", IsActive: true, VideoCount: 67},
	}
}

func (r *memoryChannelRepository) Create(channel *models.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels = append(r.channels, *channel)
	return nil
}

func (r *memoryChannelRepository) GetByID(id string) (*models.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.channels {
		if r.channels[i].ID == id {
			ch := r.channels[i]
			return &ch, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryChannelRepository) List() ([]models.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Channel, len(r.channels))
	copy(out, r.channels)
	return out, nil
}

func (r *memoryChannelRepository) Update(channel *models.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.channels {
		if r.channels[i].ID == channel.ID {
			r.channels[i] = *channel
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryChannelRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.channels {
		if r.channels[i].ID == id {
			r.channels = append(r.channels[:i], r.channels[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// memoryDownloadFileRepository backs the download catalog when running
// without a database, pre-seeded with the styles/tones packages.
type memoryDownloadFileRepository struct {
	mu    sync.RWMutex
	files []models.DownloadFile
}

// NewMemoryDownloadFileRepository creates an in-memory download catalog with
// the default purchasable files.
func NewMemoryDownloadFileRepository() DownloadFileRepository {
	return &memoryDownloadFileRepository{
		files: []models.DownloadFile{
			{ID: 1, FileKey: "styles", FileName: "Indian_Styles_Package.zip", ObjectKey: "downloads/Indian_Styles_Package.zip", FallbackURL: "https://drive.google.com/uc?export=download&id=1VQDV9perCZFtBZXfUjqhuAzleeU6cKYR&confirm=t", RequiredPlan: "styles-tones", IsActive: true},
			{ID: 2, FileKey: "tones", FileName: "Indian_Tones_Package.zip", ObjectKey: "downloads/Indian_Tones_Package.zip", FallbackURL: "https://drive.google.com/uc?export=download&id=1sLhbzIcBxHl8gVkpyLd_y6T42qb8azJ9&confirm=t", RequiredPlan: "styles-tones", IsActive: true},
		},
	}
}

func (r *memoryDownloadFileRepository) GetByFileKey(fileKey string) (*models.DownloadFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.files {
		if r.files[i].FileKey == fileKey && r.files[i].IsActive {
			f := r.files[i]
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryDownloadFileRepository) List() ([]models.DownloadFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.DownloadFile, 0, len(r.files))
	for _, f := range r.files {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memoryDownloadFileRepository) Upsert(file *models.DownloadFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.files {
		if r.files[i].FileKey == file.FileKey {
			file.ID = r.files[i].ID
			r.files[i] = *file
			return nil
		}
	}
	file.ID = uint(len(r.files) + 1)
	r.files = append(r.files, *file)
	return nil
}

// InitializeMemoryFactory wires the global factory to in-memory repositories.
// Used when PAYMENT_STORE=memory runs the service without a database.
func InitializeMemoryFactory() {
	factoryOnce.Do(func() {
		globalFactory = &Factory{
			repos: &Repositories{
				Payment:      NewMemoryPaymentRepository(),
				Channel:      NewMemoryChannelRepository(),
				DownloadFile: NewMemoryDownloadFileRepository(),
			},
		}
	})
}

package postgres

import (
	"database/sql"

	"gardenhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.GardenRepository
	repository.PlotRepository
	repository.CropRepository
	repository.OrderRepository
	repository.PickRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		GardenRepository:       NewGardenRepository(db),
		PlotRepository:         NewPlotRepository(db),
		CropRepository:         NewCropRepository(db),
		OrderRepository:        NewOrderRepository(db),
		PickRepository:         NewPickRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

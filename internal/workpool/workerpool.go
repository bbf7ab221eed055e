package workpool

import (
	"context"
	"time"

	"github.com/Tsiqara/WeatherApp/internal/channels"
	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/Tsiqara/WeatherApp/models"
)

type WorkerPool struct {
	WorkerCount int
	Channels    *channels.Channels
}

func New(channels *channels.Channels, workerCount int) *WorkerPool {
	return &WorkerPool{
		WorkerCount: workerCount,
		Channels:    channels,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.WorkerCount; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	logger.Info("Worker %d started.", id)
	for req := range wp.Channels.Requests {

		wp.Channels.WG.Add(1)

		func(req models.CityRequest) {
			defer wp.Channels.WG.Done()

			opCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			logger.Info("[%s] Worker %d processing request %d", req.Service, id, req.Index)

			if err := req.Run(opCtx); err != nil {
				logger.Error("[%s] Worker %d request %d failed: %v", req.Service, id, req.Index, err)
				return
			}

			logger.Info("[%s] Worker %d completed request %d", req.Service, id, req.Index)
		}(req)
	}

	logger.Info("Worker %d stopped.", id)
}

func (wp *WorkerPool) Stop() {
	close(wp.Channels.Requests)
}

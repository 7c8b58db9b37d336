package service

import (
	"context"

	"github.com/MKhiriev/go-saas-starter/internal/config"
	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info: models.AppInfo{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		logger: logger,
	}
}

func (s *appInfoService) Info(ctx context.Context) models.AppInfo {
	return s.info
}

package services

import (
	"vinixport_backend/internal/email"
	"vinixport_backend/internal/events"
	"vinixport_backend/internal/metrics"
)

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	AuthService          AuthService
	UserService          UserService
	ReviewRequestService ReviewRequestService
	AccessGate           AccessGate
	PortfolioService     PortfolioService
	ProjectService       ProjectService
	CertificateService   CertificateService
	MediaService         MediaService
	EmailService         email.Provider
	Events               events.Publisher
	Metrics              *metrics.Metrics
}

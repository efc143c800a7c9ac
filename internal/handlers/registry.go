package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	UserHandler          *UserHandler
	ReviewRequestHandler *ReviewRequestHandler
	PortfolioHandler     *PortfolioHandler
	ProjectHandler       *ProjectHandler
	CertificateHandler   *CertificateHandler
	HealthHandler        *HealthHandler
}

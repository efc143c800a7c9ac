package dto

// PortfolioUser - профиль владельца на публичной странице портфолио
type PortfolioUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

type PortfolioResponse struct {
	User         PortfolioUser         `json:"user"`
	Projects     []ProjectResponse     `json:"projects"`
	Certificates []CertificateResponse `json:"certificates"`
}

// PortfolioCard - карточка в публичной галерее
type PortfolioCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
}

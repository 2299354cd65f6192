package discovery

import (
	"strconv"

	"github.com/sTrAy74/swi-web/internal/gateway"
)

// UnnamedProvider is the display fallback when a provider has neither a
// business name nor a personal name.
const UnnamedProvider = "Unnamed Provider"

// ServiceRef is the compact service reference shown on provider cards
type ServiceRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ProviderCard is the render-ready projection of one provider list row.
// AvgRating stays a pointer: an unrated provider is not a zero-rated one.
type ProviderCard struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	City            string       `json:"city,omitempty"`
	State           string       `json:"state,omitempty"`
	ExperienceYears int          `json:"experienceYears"`
	AvgRating       *float64     `json:"avgRating"`
	Services        []ServiceRef `json:"services"`
}

// ProjectCard builds a render-ready card from a raw list row. The image is
// the logo when present, else the cover photo, absolutized against baseURL.
func ProjectCard(baseURL string, item gateway.ProviderListItem) ProviderCard {
	name := item.BusinessName
	if name == "" {
		name = item.FullName
	}

	var image string
	if item.Logo != nil {
		image = gateway.AbsolutizeURL(baseURL, item.Logo)
	}
	if image == "" && item.CoverPhoto != nil {
		image = gateway.AbsolutizeURL(baseURL, item.CoverPhoto)
	}

	services := make([]ServiceRef, 0, len(item.Services))
	for _, s := range item.Services {
		services = append(services, ServiceRef{ID: s.ID, Title: s.Title})
	}

	return ProviderCard{
		ID:              item.ID,
		Name:            name,
		ImageURL:        image,
		City:            item.City,
		State:           item.State,
		ExperienceYears: item.ExperienceYears,
		AvgRating:       item.AvgRating,
		Services:        services,
	}
}

// DisplayName is the card's name with the unnamed fallback applied
func (c ProviderCard) DisplayName() string {
	if c.Name == "" {
		return UnnamedProvider
	}
	return c.Name
}

// RatingLabel renders the rating to one decimal place, distinguishing an
// unrated provider from one rated 0.0.
func (c ProviderCard) RatingLabel() string {
	if c.AvgRating == nil {
		return "No rating"
	}
	return strconv.FormatFloat(*c.AvgRating, 'f', 1, 64)
}

// ServiceOffering is one priced service on a provider page
type ServiceOffering struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ProviderReview is one rendered review on a provider page
type ProviderReview struct {
	ID        int    `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ProviderPage is the render-ready projection of a full provider record
type ProviderPage struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	About           string            `json:"about,omitempty"`
	Address         string            `json:"address,omitempty"`
	City            string            `json:"city,omitempty"`
	State           string            `json:"state,omitempty"`
	Pincode         string            `json:"pincode,omitempty"`
	PhoneNumber     string            `json:"phoneNumber,omitempty"`
	ExperienceYears int               `json:"experienceYears"`
	AverageRating   float64           `json:"averageRating"`
	TotalReviews    int               `json:"totalReviews"`
	LogoURL         string            `json:"logoUrl,omitempty"`
	CoverPhotoURL   string            `json:"coverPhotoUrl,omitempty"`
	Certifications  []string          `json:"certifications,omitempty"`
	PortfolioImages []string          `json:"portfolioImages,omitempty"`
	Services        []ServiceOffering `json:"services"`
	Reviews         []ProviderReview  `json:"reviews"`
}

// ProjectPage builds a render-ready provider page from the raw detail record
func ProjectPage(baseURL string, detail gateway.ProviderDetail) ProviderPage {
	name := detail.BusinessName
	if name == "" {
		name = detail.FullName
	}
	if name == "" {
		name = UnnamedProvider
	}

	var certs []string
	for _, cert := range detail.Certifications {
		if u := gateway.AbsolutizeURL(baseURL, cert); u != "" {
			certs = append(certs, u)
		}
	}

	var portfolio []string
	for _, img := range StringList(detail.PortfolioImages) {
		if u := gateway.AbsolutizeURL(baseURL, img); u != "" {
			portfolio = append(portfolio, u)
		}
	}

	services := make([]ServiceOffering, 0, len(detail.Services))
	for _, s := range detail.Services {
		services = append(services, ServiceOffering{
			ID:          s.ID,
			Title:       s.Title,
			Description: PlainText(s.Description),
			Price:       s.Price,
		})
	}

	reviews := make([]ProviderReview, 0, len(detail.Reviews))
	for _, r := range detail.Reviews {
		review := ProviderReview{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			review.Author = r.User.Username
		}
		reviews = append(reviews, review)
	}

	return ProviderPage{
		ID:              detail.ID,
		Name:            name,
		About:           detail.About,
		Address:         detail.Address,
		City:            detail.City,
		State:           detail.State,
		Pincode:         detail.Pincode,
		PhoneNumber:     detail.PhoneNumber,
		ExperienceYears: detail.ExperienceYears,
		AverageRating:   detail.AverageRating,
		TotalReviews:    detail.TotalReviews,
		LogoURL:         gateway.AbsolutizeURL(baseURL, detail.Logo),
		CoverPhotoURL:   gateway.AbsolutizeURL(baseURL, detail.CoverPhoto),
		Certifications:  certs,
		PortfolioImages: portfolio,
		Services:        services,
		Reviews:         reviews,
	}
}

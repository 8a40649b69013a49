package handlers

import (
	"time"

	"ventureforge/internal/domain"
)

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	IdeaCount int       `json:"ideaCount"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		IdeaCount: u.IdeaCount,
	}
}

type ownerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ideaDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	TargetAudience *string   `json:"targetAudience"`
	Tier           string    `json:"tier"`
	Price          int64     `json:"price"`
	Status         string    `json:"status"`
	UserID         string    `json:"userId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toIdeaDTO(i *domain.Idea) ideaDTO {
	return ideaDTO{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		Industry:       i.Industry,
		TargetAudience: i.TargetAudience,
		Tier:           string(i.Tier),
		Price:          i.Price,
		Status:         string(i.Status),
		UserID:         i.UserID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

type ideaListItemDTO struct {
	ideaDTO
	User   ownerDTO       `json:"user"`
	Counts map[string]int `json:"_count"`
}

func toIdeaListItemDTO(it domain.IdeaListItem) ideaListItemDTO {
	return ideaListItemDTO{
		ideaDTO: toIdeaDTO(&it.Idea),
		User: ownerDTO{
			ID:    it.Owner.ID,
			Name:  it.Owner.Name,
			Email: it.Owner.Email,
			Role:  string(it.Owner.Role),
		},
		Counts: map[string]int{
			"deliverables": it.DeliverableCount,
			"payments":     it.PaymentCount,
			"messages":     it.MessageCount,
		},
	}
}

type deliverableDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Type        string    `json:"type"`
	FileURL     *string   `json:"fileUrl"`
	Content     *string   `json:"content"`
	Status      string    `json:"status"`
	IdeaID      string    `json:"ideaId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type messageDTO struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	IdeaID    string    `json:"ideaId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ideaDetailDTO struct {
	ideaDTO
	User         ownerDTO         `json:"user"`
	Deliverables []deliverableDTO `json:"deliverables"`
	Payments     []paymentDTO     `json:"payments"`
	Messages     []messageDTO     `json:"messages"`
}

func toIdeaDetailDTO(d *domain.IdeaDetail) ideaDetailDTO {
	out := ideaDetailDTO{
		ideaDTO: toIdeaDTO(&d.Idea),
		User: ownerDTO{
			ID:    d.Owner.ID,
			Name:  d.Owner.Name,
			Email: d.Owner.Email,
			Role:  string(d.Owner.Role),
		},
		Deliverables: []deliverableDTO{},
		Payments:     []paymentDTO{},
		Messages:     []messageDTO{},
	}
	for _, del := range d.Deliverables {
		out.Deliverables = append(out.Deliverables, deliverableDTO{
			ID:          del.ID,
			Name:        del.Name,
			Description: del.Description,
			Type:        string(del.Type),
			FileURL:     del.FileURL,
			Content:     del.Content,
			Status:      string(del.Status),
			IdeaID:      del.IdeaID,
			CreatedAt:   del.CreatedAt,
			UpdatedAt:   del.UpdatedAt,
		})
	}
	for _, p := range d.Payments {
		out.Payments = append(out.Payments, toPaymentDTO(&p))
	}
	for _, m := range d.Messages {
		out.Messages = append(out.Messages, messageDTO{
			ID:        m.ID,
			Content:   m.Content,
			Sender:    string(m.Sender),
			IdeaID:    m.IdeaID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

type paymentDTO struct {
	ID              string    `json:"id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	StripePaymentID string    `json:"stripePaymentId"`
	Country         string    `json:"country,omitempty"`
	UserID          string    `json:"userId"`
	IdeaID          string    `json:"ideaId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toPaymentDTO(p *domain.Payment) paymentDTO {
	return paymentDTO{
		ID:              p.ID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          string(p.Status),
		StripePaymentID: p.StripePaymentID,
		Country:         p.Country,
		UserID:          p.UserID,
		IdeaID:          p.IdeaID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type paymentHistoryDTO struct {
	paymentDTO
	Idea struct {
		Title string `json:"title"`
		Tier  string `json:"tier"`
	} `json:"idea"`
}

func toPaymentHistoryDTO(p domain.PaymentWithIdea) paymentHistoryDTO {
	out := paymentHistoryDTO{paymentDTO: toPaymentDTO(&p.Payment)}
	out.Idea.Title = p.IdeaTitle
	out.Idea.Tier = string(p.IdeaTier)
	return out
}

type portfolioItemDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Challenge   string    `json:"challenge"`
	Solution    string    `json:"solution"`
	Results     string    `json:"results"`
	ImageURL    *string   `json:"imageUrl"`
	Tier        string    `json:"tier"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPortfolioItemDTO(it domain.PortfolioItem) portfolioItemDTO {
	return portfolioItemDTO{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Industry:    it.Industry,
		Challenge:   it.Challenge,
		Solution:    it.Solution,
		Results:     it.Results,
		ImageURL:    it.ImageURL,
		Tier:        string(it.Tier),
		Featured:    it.Featured,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

type tierDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Deliverables []string `json:"deliverables"`
	Timeline     string   `json:"timeline"`
}

func toTierDTO(t domain.TierInfo) tierDTO {
	deliverables := make([]string, 0, len(t.Deliverables))
	for _, d := range t.Deliverables {
		deliverables = append(deliverables, string(d))
	}
	return tierDTO{
		ID:           string(t.Tier),
		Name:         t.Name,
		Price:        t.Price,
		Description:  t.Description,
		Features:     t.Features,
		Deliverables: deliverables,
		Timeline:     t.Timeline,
	}
}

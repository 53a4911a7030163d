package handler

import (
	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// View structs shape entities for JSON replies: locations render as
// "lat;lon" strings and timestamps in the compact stamp layout.

// UserView is the outward representation of a player. The password hash
// never leaves the server.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"userName"`
	Location    string    `json:"location"`
	LastShoutAt string    `json:"lastShoutAt"`
	Points      int       `json:"points"`
}

// ShoutView is the outward representation of one chain step.
type ShoutView struct {
	ID             uuid.UUID   `json:"id"`
	TemplateID     uuid.UUID   `json:"templateId"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
	Location       string      `json:"location"`
	CreatedAt      string      `json:"createdAt"`
}

// TemplateView is the outward representation of a chain's goal.
type TemplateView struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"senderId"`
	ReceiverID    *uuid.UUID `json:"receiverId,omitempty"`
	StartLocation string     `json:"startLocation"`
	EndLocation   string     `json:"endLocation"`
	LastShoutAt   string     `json:"lastShoutAt"`
	Completed     bool       `json:"completed"`
}

// VictoryView is the outward representation of a settled chain.
type VictoryView struct {
	ID            uuid.UUID   `json:"id"`
	TemplateID    uuid.UUID   `json:"templateId"`
	ReceiverIDs   []uuid.UUID `json:"receiverIds"`
	PointsAwarded int         `json:"pointsAwarded"`
	CreatedAt     string      `json:"createdAt"`
}

// CreateShoutView bundles everything a successful shout produced.
type CreateShoutView struct {
	Shout    *ShoutView    `json:"shout"`
	Template *TemplateView `json:"template"`
	Victory  *VictoryView  `json:"victory,omitempty"`
}

// LoginView returns the credentials issued at login.
type LoginView struct {
	AccessToken string    `json:"accessToken"`
	LoginKey    string    `json:"loginKey"`
	User        *UserView `json:"user"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:          user.ID,
		UserName:    user.UserName,
		Location:    user.Location.String(),
		LastShoutAt: entity.FormatStamp(user.LastShoutAt),
		Points:      user.Points,
	}
}

func toShoutView(shout *entity.Shout) *ShoutView {
	if shout == nil {
		return nil
	}

	return &ShoutView{
		ID:             shout.ID,
		TemplateID:     shout.TemplateID,
		ParticipantIDs: shout.ParticipantIDs,
		Location:       shout.Origin.String(),
		CreatedAt:      entity.FormatStamp(shout.CreatedAt),
	}
}

func toShoutViews(shouts []*entity.Shout) []*ShoutView {
	views := make([]*ShoutView, 0, len(shouts))
	for _, shout := range shouts {
		views = append(views, toShoutView(shout))
	}

	return views
}

func toTemplateView(template *entity.Template) *TemplateView {
	if template == nil {
		return nil
	}

	return &TemplateView{
		ID:            template.ID,
		SenderID:      template.SenderID,
		ReceiverID:    template.ReceiverID,
		StartLocation: template.StartLocation.String(),
		EndLocation:   template.EndLocation.String(),
		LastShoutAt:   entity.FormatStamp(template.LastShoutAt),
		Completed:     template.Completed,
	}
}

func toVictoryView(victory *entity.Victory) *VictoryView {
	if victory == nil {
		return nil
	}

	return &VictoryView{
		ID:            victory.ID,
		TemplateID:    victory.TemplateID,
		ReceiverIDs:   victory.ReceiverIDs,
		PointsAwarded: victory.PointsAwarded,
		CreatedAt:     entity.FormatStamp(victory.CreatedAt),
	}
}

func toVictoryViews(victories []*entity.Victory) []*VictoryView {
	views := make([]*VictoryView, 0, len(victories))
	for _, victory := range victories {
		views = append(views, toVictoryView(victory))
	}

	return views
}

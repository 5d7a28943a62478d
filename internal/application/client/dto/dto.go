package dto

import (
	"time"

	servicedto "github.com/opsdesk-inc/opsdesk/internal/application/service/dto"
	ticketdto "github.com/opsdesk-inc/opsdesk/internal/application/ticket/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/client"
)

type ClientDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Fixed includes on read paths: the client's services and any
	// tickets not yet closed.
	Services    []*servicedto.ServiceDTO `json:"services,omitempty"`
	OpenTickets []*ticketdto.TicketDTO   `json:"open_tickets,omitempty"`
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Company string `json:"company" binding:"max=200"`
	Address string `json:"address" binding:"max=500"`
}

type UpdateClientRequest struct {
	Name    string `json:"name" binding:"omitempty,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Company string `json:"company" binding:"omitempty,max=200"`
	Address string `json:"address" binding:"omitempty,max=500"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListClientsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Company:   c.Company(),
		Address:   c.Address(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	dtos := make([]*ClientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = ToClientDTO(c)
	}
	return dtos
}

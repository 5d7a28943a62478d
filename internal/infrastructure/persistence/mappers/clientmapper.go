package mappers

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Company:   c.Company(),
		Address:   c.Address(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	status, err := client.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return client.ReconstructClient(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Company,
		model.Address,
		status,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

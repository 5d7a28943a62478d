package client

import (
	"fmt"
	"strings"
	"time"
)

// Client is a customer organization receiving IT services.
type Client struct {
	id        uint
	name      string
	email     string
	phone     string
	company   string
	address   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(name, email, phone, company, address string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	now := time.Now()
	return &Client{
		name:      name,
		email:     email,
		phone:     phone,
		company:   company,
		address:   address,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructClient(
	id uint,
	name, email, phone, company, address string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Client{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		company:   company,
		address:   address,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Client) ID() uint             { return c.id }
func (c *Client) Name() string         { return c.name }
func (c *Client) Email() string        { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) Company() string      { return c.company }
func (c *Client) Address() string      { return c.address }
func (c *Client) Status() Status       { return c.status }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateProfile overwrites the provided contact fields. Empty strings
// leave the current value in place, matching partial PUT semantics.
func (c *Client) UpdateProfile(name, email, phone, company, address string) error {
	if name != "" {
		if len(name) > 200 {
			return fmt.Errorf("name exceeds maximum length of 200 characters")
		}
		c.name = name
	}
	if email != "" {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("invalid email address")
		}
		c.email = email
	}
	if phone != "" {
		c.phone = phone
	}
	if company != "" {
		c.company = company
	}
	if address != "" {
		c.address = address
	}
	c.updatedAt = time.Now()
	return nil
}

func (c *Client) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid client status: %s", status)
	}
	c.status = status
	c.updatedAt = time.Now()
	return nil
}

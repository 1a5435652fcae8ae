package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
)

// GetCategories fetches active masterlist categories.
func (c *Client) GetCategories(ctx context.Context) ([]domain.Category, error) {
	values := url.Values{}
	values.Set("Status", "true")

	var out dto.CategoryResponse
	if err := c.get(ctx, "/category", values, &out); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(out.Value.Category))
	for _, item := range out.Value.Category {
		categories = append(categories, domain.Category{
			ID:          item.ID,
			ChannelID:   item.ChannelID,
			Description: item.CategoryDescription,
		})
	}
	return categories, nil
}

// GetSubCategories fetches the sub-categories belonging to the given
// category ids. This is the dependent-field cascade source: the option
// list narrows whenever the category selection changes.
func (c *Client) GetSubCategories(ctx context.Context, categoryIDs []int) ([]domain.SubCategory, error) {
	values := url.Values{}
	for _, id := range categoryIDs {
		values.Add("CategoryId", strconv.Itoa(id))
	}

	var out dto.SubCategoryResponse
	if err := c.get(ctx, "/sub-category", values, &out); err != nil {
		return nil, err
	}
	subCategories := make([]domain.SubCategory, 0, len(out.Value))
	for _, item := range out.Value {
		subCategories = append(subCategories, domain.SubCategory{
			ID:          item.SubCategoryID,
			CategoryID:  item.CategoryID,
			Description: item.SubCategoryDescription,
		})
	}
	return subCategories, nil
}

// GetChannels fetches the service channels tickets are routed through.
func (c *Client) GetChannels(ctx context.Context) ([]domain.Channel, error) {
	var out dto.ChannelResponse
	if err := c.get(ctx, "/channel", nil, &out); err != nil {
		return nil, err
	}
	channels := make([]domain.Channel, 0, len(out.Value))
	for _, item := range out.Value {
		channels = append(channels, domain.Channel{
			ID:   item.ChannelID,
			Name: item.ChannelName,
		})
	}
	return channels, nil
}

// GetTechnicians fetches assignable technicians.
func (c *Client) GetTechnicians(ctx context.Context) ([]domain.Technician, error) {
	var out dto.TechnicianResponse
	if err := c.get(ctx, "/technician", nil, &out); err != nil {
		return nil, err
	}
	technicians := make([]domain.Technician, 0, len(out.Value))
	for _, item := range out.Value {
		technicians = append(technicians, domain.Technician{
			ID:   item.TechnicianID,
			Name: item.TechnicianName,
		})
	}
	return technicians, nil
}

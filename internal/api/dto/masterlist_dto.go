package dto

// CategoryItem is a masterlist category row.
type CategoryItem struct {
	ID                  int    `json:"id"`
	ChannelID           int    `json:"channelId"`
	CategoryDescription string `json:"category_Description"`
}

// CategoryValue is the category list body.
type CategoryValue struct {
	Category []CategoryItem `json:"category"`
}

// CategoryResponse is the category list envelope.
type CategoryResponse struct {
	Value CategoryValue `json:"value"`
}

// SubCategoryItem is a masterlist sub-category row.
type SubCategoryItem struct {
	SubCategoryID          int    `json:"subCategoryId"`
	CategoryID             int    `json:"categoryId"`
	SubCategoryDescription string `json:"sub_Category_Description"`
}

// SubCategoryResponse is the sub-category list envelope. The backend
// returns the rows directly under value.
type SubCategoryResponse struct {
	Value []SubCategoryItem `json:"value"`
}

// ChannelItem is a masterlist channel row.
type ChannelItem struct {
	ChannelID   int    `json:"channelId"`
	ChannelName string `json:"channel_Name"`
}

// ChannelResponse is the channel list envelope.
type ChannelResponse struct {
	Value []ChannelItem `json:"value"`
}

// TechnicianItem is a masterlist technician row.
type TechnicianItem struct {
	TechnicianID   int    `json:"technicianId"`
	TechnicianName string `json:"technician_Name"`
}

// TechnicianResponse is the technician list envelope.
type TechnicianResponse struct {
	Value []TechnicianItem `json:"value"`
}

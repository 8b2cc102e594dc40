package request

// UpdateSettingsRequest represents a company settings update request
type UpdateSettingsRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	MaxTables   *int    `json:"max_tables" binding:"omitempty,min=1,max=200"`
}

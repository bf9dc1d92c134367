package handlers

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ToggleRequest struct {
	Dimension string `json:"dimension"`
	ID        string `json:"id"`
}

type SelectAllRequest struct {
	Dimension string `json:"dimension"`
}

// SettingsRequest is a partial update: only the fields present in the
// body are applied.
type SettingsRequest struct {
	Period             *string  `json:"period,omitempty"`
	TimeRange          *string  `json:"time_range,omitempty"`
	ForecastHorizon    *int     `json:"forecast_horizon,omitempty"`
	ConfidenceInterval *int     `json:"confidence_interval,omitempty"`
	DeliveryThreshold  *float64 `json:"delivery_threshold,omitempty"`
	AutoRefresh        *bool    `json:"auto_refresh,omitempty"`
	RefreshSeconds     *int     `json:"refresh_seconds,omitempty"`
	CostAnalysis       *bool    `json:"cost_analysis,omitempty"`
	Benchmarking       *bool    `json:"benchmarking,omitempty"`
	SeasonalComparison *bool    `json:"seasonal_comparison,omitempty"`
}

type BookmarkRequest struct {
	Label string `json:"label"`
}

type BookmarkResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CreatedAt string `json:"created_at"`
}

type ExportResult struct {
	Filename string   `json:"filename"`
	Warnings []string `json:"warnings,omitempty"`
}

type RefreshResult struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

package model

// Mail is the rendered message handed to the transport.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// ReminderMail is one plan-renewal reminder request. PublicID is the
// tenant-scoped member identifier used as the dedup key; when empty the
// send is treated as a disposable test send and is neither logged nor
// deduplicated.
type ReminderMail struct {
	To         string
	UserName   string
	PlanName   string
	ExpiryDate string
	Subject    string
	PublicID   string
	GymName    string
}

// DiscountMail is a promotional discount mail request.
type DiscountMail struct {
	To               string
	UserName         string
	Subject          string
	PromotionEndDate string
}

// PasswordResetMail carries a password-reset link.
type PasswordResetMail struct {
	To        string
	Subject   string
	ResetLink string
	GymName   string
}

// PlatformUserCredentialsMail carries a temporary password for a newly
// provisioned platform user.
type PlatformUserCredentialsMail struct {
	To                string
	Subject           string
	TemporaryPassword string
	ResetPasswordLink string
	GymName           string
}

// MemberPlanRow is one member line in the daily admin report.
type MemberPlanRow struct {
	UserName   string `json:"userName"`
	PlanName   string `json:"planName"`
	ExpiryDate string `json:"expiryDate"`
}

// AdminReportMail is the daily administrative renewals report.
type AdminReportMail struct {
	To              string          `json:"to"`
	Subject         string          `json:"subject"`
	ReportDate      string          `json:"reportDate"`
	GymName         string          `json:"gymName"`
	ExpiringSoon    []MemberPlanRow `json:"expiringSoon"`
	RecentlyExpired []MemberPlanRow `json:"recentlyExpired"`
}

// SaleRow is one sale line in the daily sales report.
type SaleRow struct {
	ClientName string  `json:"clientName"`
	Item       string  `json:"item"`
	Amount     float64 `json:"amount"`
	Time       string  `json:"time"`
}

// SalesReportMail is the daily sales summary report.
type SalesReportMail struct {
	To           string    `json:"to"`
	Subject      string    `json:"subject"`
	ReportDate   string    `json:"reportDate"`
	GymName      string    `json:"gymName"`
	TotalRevenue float64   `json:"totalRevenue"`
	PlanSales    []SaleRow `json:"planSales"`
	FoodSales    []SaleRow `json:"foodSales"`
}

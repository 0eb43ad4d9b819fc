package analytics

import "time"

// Event actions and categories recorded by the site.
const (
	ActionCTAClick          = "cta_click"
	ActionHeroCTAClick      = "hero_cta_click"
	ActionPageView          = "page_view"
	ActionFormSubmitSuccess = "form_submit_success"
	ActionFormSubmitError   = "form_submit_error"
	ActionSearch            = "search"
	ActionFileDownload      = "file_download"
	ActionVariantAssigned   = "ab_variant_assigned"
	ActionChatbotInit       = "chatbot_initialized"

	CategoryEngagement = "engagement"
	CategoryConversion = "conversion"
	CategoryNavigation = "navigation"
	CategoryABTesting  = "ab_testing"
)

// DefaultCap is how many events the log keeps.
const DefaultCap = 100

// MaxReportDays bounds the report window.
const MaxReportDays = 365

// Event is one entry of the append-only log. Timestamp is in Unix milliseconds.
type Event struct {
	Action    string   `json:"action"`
	Category  string   `json:"category"`
	Label     string   `json:"label,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Variant   string   `json:"variant,omitempty"`
	Page      string   `json:"page,omitempty"`
	Timestamp int64    `json:"timestamp"`
	SessionID string   `json:"session_id"`
	UserID    string   `json:"user_id"`
}

func (e Event) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Identity ties events to a visitor and a browsing session.
type Identity struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// Report summarizes the events of the last Days days.
type Report struct {
	Days            int            `json:"days"`
	TotalEvents     int            `json:"totalEvents"`
	CTAClicks       int            `json:"ctaClicks"`
	HeroCTAClicks   int            `json:"heroCTAClicks"`
	FormSubmissions int            `json:"formSubmissions"`
	PageViews       int            `json:"pageViews"`
	Searches        int            `json:"searches"`
	CTAPerformance  map[string]int `json:"ctaPerformance"`
	DailyBreakdown  map[string]int `json:"dailyBreakdown"`
}

// Assignment is the answer of a variant lookup.
type Assignment struct {
	Test    string `json:"test"`
	Variant string `json:"variant"`
	UserID  string `json:"user_id"`
}

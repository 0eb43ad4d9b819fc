package content

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	LinkedIn string `json:"linkedin"`
	Badge    string `json:"badge,omitempty"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

type Program struct {
	ID          string   `json:"id"`
	Track       string   `json:"track"`
	Duration    string   `json:"duration"`
	Structure   string   `json:"structure"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Ideal       string   `json:"ideal"`
	Commitment  string   `json:"commitment"`
	CohortSize  string   `json:"cohort_size"`
}

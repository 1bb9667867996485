package store

// TaxBracket is one marginal rate band for a year and filing status.
// BracketMax is nil when the band has no upper bound.
type TaxBracket struct {
	ID           int64   `json:"id"`
	Year         int     `json:"year"`
	FilingStatus string  `json:"filingStatus"`
	BracketMin   int     `json:"bracketMin"`
	BracketMax   *int    `json:"bracketMax"`
	TaxRate      float64 `json:"taxRate"`
	CreatedAt    string  `json:"createdAt"`
}

type StandardDeduction struct {
	ID           int64  `json:"id"`
	Year         int    `json:"year"`
	FilingStatus string `json:"filingStatus"`
	Amount       int    `json:"amount"`
	CreatedAt    string `json:"createdAt"`
}

type RetirementLimit struct {
	ID                int64  `json:"id"`
	Year              int    `json:"year"`
	AccountType       string `json:"accountType"`
	ContributionLimit int    `json:"contributionLimit"`
	CatchUpLimit      *int   `json:"catchUpLimit"`
	AgeRequirement    *int   `json:"ageRequirement"`
	CreatedAt         string `json:"createdAt"`
}

type SaltDeduction struct {
	ID                int64  `json:"id"`
	Year              int    `json:"year"`
	FilingStatus      string `json:"filingStatus"`
	DeductionCap      int    `json:"deductionCap"`
	PhaseoutThreshold *int   `json:"phaseoutThreshold"`
	CreatedAt         string `json:"createdAt"`
}

// Provision is a new-for-2025 tax provision. IsTemporary is stored as 0/1.
type Provision struct {
	ID                int64   `json:"id"`
	ProvisionName     string  `json:"provisionName"`
	Description       string  `json:"description"`
	EffectiveDate     string  `json:"effectiveDate"`
	ExpirationDate    *string `json:"expirationDate"`
	PublicLawCitation string  `json:"publicLawCitation"`
	IRCSection        string  `json:"ircSection"`
	IsTemporary       bool    `json:"isTemporary"`
	CreatedAt         string  `json:"createdAt"`
}

type GovernmentReference struct {
	ID             int64  `json:"id"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	CitationNumber string `json:"citationNumber"`
	URL            string `json:"url"`
	PublishedDate  string `json:"publishedDate"`
	Description    string `json:"description"`
	CreatedAt      string `json:"createdAt"`
}

type EntityImpact struct {
	ID                int64  `json:"id"`
	EntityType        string `json:"entityType"`
	ProvisionName     string `json:"provisionName"`
	ImpactDescription string `json:"impactDescription"`
	PotentialSavings  string `json:"potentialSavings"`
	Year              int    `json:"year"`
	CreatedAt         string `json:"createdAt"`
}

// ListQuery carries pagination plus the equality/substring filters a resource
// supports. Zero values mean "no filter".
type ListQuery struct {
	Limit        int
	Offset       int
	Year         *int
	FilingStatus string
	AccountType  string
	EntityType   string
	Category     string
	Search       string
	IsTemporary  *bool
}

// Optional update fields. Set reports whether the client provided the field at
// all; for nullable columns a nil Value clears the stored value.
type OptInt struct {
	Set   bool
	Value int
}

type OptNullInt struct {
	Set   bool
	Value *int
}

type OptFloat struct {
	Set   bool
	Value float64
}

type OptString struct {
	Set   bool
	Value string
}

type OptNullString struct {
	Set   bool
	Value *string
}

type OptBool struct {
	Set   bool
	Value bool
}

type TaxBracketUpdate struct {
	Year         OptInt
	FilingStatus OptString
	BracketMin   OptInt
	BracketMax   OptNullInt
	TaxRate      OptFloat
}

type StandardDeductionUpdate struct {
	Year         OptInt
	FilingStatus OptString
	Amount       OptInt
}

type RetirementLimitUpdate struct {
	Year              OptInt
	AccountType       OptString
	ContributionLimit OptInt
	CatchUpLimit      OptNullInt
	AgeRequirement    OptNullInt
}

type SaltDeductionUpdate struct {
	Year              OptInt
	FilingStatus      OptString
	DeductionCap      OptInt
	PhaseoutThreshold OptNullInt
}

type ProvisionUpdate struct {
	ProvisionName     OptString
	Description       OptString
	EffectiveDate     OptString
	ExpirationDate    OptNullString
	PublicLawCitation OptString
	IRCSection        OptString
	IsTemporary       OptBool
}

type GovernmentReferenceUpdate struct {
	Category       OptString
	Title          OptString
	CitationNumber OptString
	URL            OptString
	PublishedDate  OptString
	Description    OptString
}

type EntityImpactUpdate struct {
	EntityType        OptString
	ProvisionName     OptString
	ImpactDescription OptString
	PotentialSavings  OptString
	Year              OptInt
}

// ComparisonData is the year-partitioned payload served by the comparison
// endpoint. Map keys are the two fixed years, 2024 and 2025.
type ComparisonData struct {
	TaxBrackets        map[int][]TaxBracket        `json:"taxBrackets"`
	StandardDeductions map[int][]StandardDeduction `json:"standardDeductions"`
	RetirementLimits   map[int][]RetirementLimit   `json:"retirementLimits"`
	SaltDeductions     map[int][]SaltDeduction     `json:"saltDeductions"`
	Summary            ComparisonSummary           `json:"summary"`
}

type ComparisonSummary struct {
	TotalBrackets2024          int `json:"totalBrackets2024"`
	TotalBrackets2025          int `json:"totalBrackets2025"`
	RetirementAccountTypes2025 int `json:"retirementAccountTypes2025"`
}

package api

// Paging is the generic paging envelope the upstream attaches to every
// collection view.
type Paging struct {
	Count int `json:"count"`
	Start int `json:"start"`
	Total int `json:"total"`
}

// ElementsView is the upstream's standard collection wrapper.
type ElementsView[T any] struct {
	Elements []T    `json:"elements"`
	Paging   Paging `json:"paging"`
}

// ProfileView is the aggregate profile document. Skills and contact
// info live on separate endpoints upstream; GetProfile fetches them and
// fills the derived fields before returning.
type ProfileView struct {
	EntityURN     string                  `json:"entityUrn"`
	Profile       Profile                 `json:"profile"`
	PositionView  ElementsView[Position]  `json:"positionView"`
	EducationView ElementsView[Education] `json:"educationView"`
	SkillView     ElementsView[Skill]     `json:"skillView"`

	Skills []Skill `json:"-"`
}

type Profile struct {
	EntityURN      string       `json:"entityUrn"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Headline       string       `json:"headline"`
	Summary        string       `json:"summary"`
	IndustryName   string       `json:"industryName"`
	GeoCountryName string       `json:"geoCountryName"`
	LocationName   string       `json:"locationName"`
	MiniProfile    *MiniProfile `json:"miniProfile"`

	// derived from the mini profile's entity urn
	ProfileID string      `json:"-"`
	Contact   ContactInfo `json:"-"`
}

type MiniProfile struct {
	EntityURN        string `json:"entityUrn"`
	PublicIdentifier string `json:"publicIdentifier"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Occupation       string `json:"occupation"`
}

type Position struct {
	EntityURN    string      `json:"entityUrn"`
	Title        string      `json:"title"`
	CompanyName  string      `json:"companyName"`
	CompanyURN   string      `json:"companyUrn"`
	Description  string      `json:"description"`
	LocationName string      `json:"locationName"`
	TimePeriod   *TimePeriod `json:"timePeriod"`
}

type Education struct {
	EntityURN    string      `json:"entityUrn"`
	SchoolName   string      `json:"schoolName"`
	DegreeName   string      `json:"degreeName"`
	FieldOfStudy string      `json:"fieldOfStudy"`
	TimePeriod   *TimePeriod `json:"timePeriod"`
}

type TimePeriod struct {
	StartDate *YearMonth `json:"startDate"`
	EndDate   *YearMonth `json:"endDate"`
}

type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type Skill struct {
	EntityURN string `json:"entityUrn"`
	Name      string `json:"name"`
}

type Website struct {
	Url   string
	Label string
}

type ContactInfo struct {
	EmailAddress string
	Websites     []Website
	Twitter      []string
	PhoneNumbers []string
	BirthDate    string
}

type Connection struct {
	UrnID    string
	PublicID string
	Distance string
}

type PersonSearchResult struct {
	UrnID    string
	PublicID string
	Distance string
}

// SearchPeopleParams narrows a people search; zero-valued fields are
// left out of the filter list.
type SearchPeopleParams struct {
	Keywords           string
	ConnectionOf       string
	NetworkDepth       string
	Regions            []string
	Industries         []string
	CurrentCompany     []string
	PastCompanies      []string
	ProfileLanguages   []string
	NonprofitInterests []string
	Schools            []string
	// caps the number of results, 0 means no cap
	Limit int
}

type Conversation struct {
	ID string
}

type ConversationDetails struct {
	ID string
}

type Invitation struct {
	EntityURN    string
	SharedSecret string
}

type MemberBadges struct {
	Premium    bool
	OpenLink   bool
	Influencer bool
	JobSeeker  bool
}

type NetworkInfo struct {
	FollowersCount uint64
}

type School struct {
	Name string
}

type Company struct {
	Name string
}

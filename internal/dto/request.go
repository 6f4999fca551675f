package dto

type CreateVendorRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Instagram   string   `json:"instagram"`
	Images      []string `json:"images"`
	Services    []string `json:"services"`
	Featured    bool     `json:"featured"`
}

// UpdateVendorRequest applies only the fields that are present.
type UpdateVendorRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Category    *string   `json:"category" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	PriceRange  *string   `json:"priceRange"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Instagram   *string   `json:"instagram"`
	Images      *[]string `json:"images"`
	Services    *[]string `json:"services"`
	Featured    *bool     `json:"featured"`
}

type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type BlogPostRequest struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content" validate:"required"`
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"imageUrl" validate:"omitempty,url"`
	Published bool     `json:"published"`
}

type BusinessSubmissionRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ContactName  string `json:"contactName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Website      string `json:"website" validate:"omitempty,url"`
}

type SubmissionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected pending"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type CreateWeddingRequest struct {
	BrideName        string `json:"brideName"`
	GroomName        string `json:"groomName"`
	WeddingDate      string `json:"weddingDate"`
	CeremonyType     string `json:"ceremonyType"`
	CeremonyVenue    string `json:"ceremonyVenue"`
	CeremonyAddress  string `json:"ceremonyAddress"`
	CeremonyTime     string `json:"ceremonyTime"`
	ReceptionVenue   string `json:"receptionVenue"`
	ReceptionAddress string `json:"receptionAddress"`
	ReceptionTime    string `json:"receptionTime"`
	ContactEmail     string `json:"contactEmail"`
	ContactPhone     string `json:"contactPhone"`
	MaxGuests        int    `json:"maxGuests"`
	RSVPDeadline     string `json:"rsvpDeadline"`
	Story            string `json:"story"`
	Slug             string `json:"slug"`
	AdminSecretLink  string `json:"adminSecretLink"`
}

type CreateWeddingEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	DressCode   string `json:"dressCode"`
	SortOrder   int    `json:"sortOrder"`
}

type CreateQuestionRequest struct {
	Question     string   `json:"question" validate:"required"`
	QuestionType string   `json:"questionType" validate:"omitempty,oneof=text choice yesno"`
	Options      []string `json:"options"`
	Required     bool     `json:"required"`
	SortOrder    int      `json:"sortOrder"`
}

// IssueInvitationRequest is one entry of the batch issuance body.
type IssueInvitationRequest struct {
	WeddingID    uint   `json:"wedding_id"`
	GuestName    string `json:"guest_name"`
	GuestEmail   string `json:"guest_email"`
	MaxGuests    *int   `json:"max_guests"`
	AllowPlusOne bool   `json:"allow_plus_one"`
}

type SubmitRSVPRequest struct {
	InvitationCode      string            `json:"invitationCode"`
	GuestName           string            `json:"guestName"`
	GuestEmail          string            `json:"guestEmail"`
	GuestPhone          string            `json:"guestPhone,omitempty"`
	AttendingCeremony   bool              `json:"attendingCeremony"`
	AttendingReception  bool              `json:"attendingReception"`
	NumberOfGuests      int               `json:"numberOfGuests"`
	CeremonyType        string            `json:"ceremonyType,omitempty"`
	CeremonyTime        string            `json:"ceremonyTime,omitempty"`
	ReceptionTime       string            `json:"receptionTime,omitempty"`
	DietaryRestrictions string            `json:"dietaryRestrictions,omitempty"`
	Message             string            `json:"message,omitempty"`
	Responses           map[string]string `json:"responses,omitempty"`
}

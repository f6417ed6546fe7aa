package api

import "github.com/google/uuid"

// Request/response structures for every endpoint. Create and update
// payloads enumerate their fields explicitly; patch payloads use pointer
// fields so "absent" and "set to zero value" stay distinguishable, and are
// decoded rejecting unknown fields.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TokenResponse is the body returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SurgeryRequest defines the payload for creating or replacing a surgery.
type SurgeryRequest struct {
	Surgery            string `json:"surgery"             validate:"required"`
	SurgeryDescription string `json:"surgery_description" validate:"required"`
	PartnerID          int64  `json:"partner_id"          validate:"required"`
}

// SurgeryPatchRequest defines the partial-update payload for a surgery.
type SurgeryPatchRequest struct {
	Surgery            *string `json:"surgery,omitempty"`
	SurgeryDescription *string `json:"surgery_description,omitempty"`
}

// TierListRequest defines the payload for creating or replacing a tier list.
type TierListRequest struct {
	Tier                   string `json:"tier"                    validate:"required"`
	SurgeryID              int64  `json:"surgery_id"              validate:"required"`
	VisaSponsorship        string `json:"visa_sponsorship"        validate:"required"`
	FlightType             string `json:"flight_type"             validate:"required"`
	NumberFamilyMembers    string `json:"number_family_members"`
	HospitalAccommodations string `json:"hospital_accommodations" validate:"required"`
	Hotel                  string `json:"hotel"                   validate:"required"`
	DurationStay           string `json:"duration_stay"           validate:"required"`
	TourismPackage         string `json:"tourism_package"         validate:"required"`
	PostSurgeryMonitoring  string `json:"post_surgery_monitoring" validate:"required"`
	Price                  string `json:"price"                   validate:"required"`
}

// PartnerRequest defines the payload for creating or replacing a partner.
// Logo is a base64-encoded image.
type PartnerRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	Website     string `json:"website"      validate:"required"`
	HelpType    string `json:"help_type"    validate:"required"`
	Logo        string `json:"logo,omitempty"`
}

// CustomerRequest defines the payload for creating or replacing a customer.
// Birthdate uses the ISO date form (2006-01-02). National ID and passport
// number are optional; which one identifies the customer depends on their
// country of origin.
type CustomerRequest struct {
	FullName         string `json:"full_name"          validate:"required"`
	ContactEmail     string `json:"contact_email"      validate:"required,email"`
	Birthdate        string `json:"birthdate"          validate:"required,datetime=2006-01-02"`
	NationalIDNumber string `json:"national_id_number,omitempty"`
	PassportNumber   string `json:"passport_number,omitempty"`
	CountryOfOrigin  string `json:"country_of_origin"  validate:"required"`
	DeniedVisa       bool   `json:"denied_visa"`
}

// BuyRequest defines the payload for recording a purchase. Document fields
// are base64-encoded in JSON.
type BuyRequest struct {
	CustomerID   int64  `json:"customer_id"   validate:"required"`
	SurgeryID    int64  `json:"surgery_id"    validate:"required"`
	TierListID   int64  `json:"tier_list_id"  validate:"required"`
	Price        string `json:"price"         validate:"required"`
	SchengenArea bool   `json:"schengen_area"`

	ValidPhoto             []byte `json:"valid_photo,omitempty"`
	IDScan                 []byte `json:"id_scan,omitempty"`
	MedicalDossier         []byte `json:"medical_dossier,omitempty"`
	TripClearanceDoc       []byte `json:"trip_clearance_doc,omitempty"`
	OralCareImplantPlan    []byte `json:"oral_care_implant_plan,omitempty"`
	HairCareImplantPlan    []byte `json:"hair_care_implant_plan,omitempty"`
	VisaDocuments          []byte `json:"visa_documents,omitempty"`
	VisaApplicationForm    []byte `json:"visa_application_form,omitempty"`
	IdenticalPhotos        []byte `json:"identical_photos,omitempty"`
	PassportCopy           []byte `json:"passport_copy,omitempty"`
	MedicalTravelInsurance []byte `json:"medical_travel_insurance,omitempty"`
	ProofOfFinancialMeans  []byte `json:"proof_of_financial_means,omitempty"`
	GuaranteeLetter        []byte `json:"guarantee_letter,omitempty"`
}

// EmailSendRequest defines the payload for the send-email endpoint.
type EmailSendRequest struct {
	MailFrom string `json:"mail_from" validate:"omitempty,email"`
	MailTo   string `json:"mail_to"   validate:"required,email"`
	Subject  string `json:"subject"   validate:"required"`
	Message  string `json:"message"   validate:"required"`
}

// EmailSendResponse is the body returned after a successful delivery.
type EmailSendResponse struct {
	Message string `json:"message"`
	EmailID int64  `json:"email_id"`
}

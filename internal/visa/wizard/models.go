// internal/visa/wizard/models.go
package wizard

// TravelDetails is the trip step of the wizard.
type TravelDetails struct {
	ApplicantCount   int    `json:"applicantCount"`
	Purpose          string `json:"purpose"`
	EntryDate        string `json:"entryDate"`
	ExitDate         string `json:"exitDate"`
	EntryPort        string `json:"entryPort"`
	ExitPort         string `json:"exitPort"`
	AddressInVietnam string `json:"addressInVietnam"`
	CityProvince     string `json:"cityProvince"`
	FlightNumber     string `json:"flightNumber"`
	EntryType        string `json:"entryType"`
}

// ApplicantData is one traveller's form in the wizard.
type ApplicantData struct {
	FullName                      string `json:"fullName"`
	Nationality                   string `json:"nationality"`
	PassportNumber                string `json:"passportNumber"`
	DateOfBirth                   string `json:"dateOfBirth"`
	PassportExpiry                string `json:"passportExpiry"`
	Gender                        string `json:"gender"`
	Religion                      string `json:"religion"`
	PlaceOfBirth                  string `json:"placeOfBirth"`
	PassportType                  string `json:"passportType"`
	IssuingAuthority              string `json:"issuingAuthority"`
	DateOfIssue                   string `json:"dateOfIssue"`
	PermanentAddress              string `json:"permanentAddress"`
	ContactAddress                string `json:"contactAddress"`
	ContactAddressSameAsPermanent bool   `json:"contactAddressSameAsPermanent"`
	TelephoneNumber               string `json:"telephoneNumber"`
	EmergencyFullName             string `json:"emergencyFullName"`
	EmergencyAddress              string `json:"emergencyAddress"`
	EmergencyPhone                string `json:"emergencyPhone"`
	EmergencyRelationship         string `json:"emergencyRelationship"`
}

// EffectiveContactAddress resolves the same-as-permanent checkbox.
func (a *ApplicantData) EffectiveContactAddress() string {
	if a.ContactAddressSameAsPermanent {
		return a.PermanentAddress
	}
	return a.ContactAddress
}

// ContactInfo is the shared contact step, collected once per order.
type ContactInfo struct {
	Email                string `json:"email"`
	ConfirmEmail         string `json:"confirmEmail"`
	Mobile               string `json:"mobile"`
	WhatsApp             string `json:"whatsapp"`
	WhatsAppSameAsMobile bool   `json:"whatsappSameAsMobile"`
}

// EffectiveWhatsApp resolves the same-as-mobile checkbox.
func (c *ContactInfo) EffectiveWhatsApp() string {
	if c.WhatsAppSameAsMobile {
		return c.Mobile
	}
	return c.WhatsApp
}

// EntryPort is a checkpoint where a visa can be used.
type EntryPort struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// EntryPorts lists every supported checkpoint.
var EntryPorts = []EntryPort{
	// International Airports
	{Code: "SGN", Name: "Tan Son Nhat Int. Airport (Ho Chi Minh City)", Type: "airport"},
	{Code: "HAN", Name: "Noi Bai Int. Airport (Hanoi)", Type: "airport"},
	{Code: "DAD", Name: "Da Nang Int. Airport", Type: "airport"},
	{Code: "CXR", Name: "Cam Ranh Int. Airport (Nha Trang)", Type: "airport"},
	{Code: "PQC", Name: "Phu Quoc Int. Airport", Type: "airport"},
	{Code: "HPH", Name: "Cat Bi Int. Airport (Hai Phong)", Type: "airport"},
	{Code: "VCA", Name: "Can Tho Int. Airport", Type: "airport"},
	{Code: "HUI", Name: "Phu Bai Int. Airport (Hue)", Type: "airport"},
	{Code: "VDO", Name: "Van Don Int. Airport", Type: "airport"},
	{Code: "THD", Name: "Tho Xuan Int. Airport", Type: "airport"},
	{Code: "VDH", Name: "Dong Hoi Int. Airport", Type: "airport"},
	{Code: "UIH", Name: "Phu Cat Int. Airport", Type: "airport"},
	{Code: "DLI", Name: "Lien Khuong Int. Airport (Da Lat)", Type: "airport"},
	// Land Border Gates
	{Code: "MOCLB", Name: "Moc Bai Land Border (Tay Ninh)", Type: "land"},
	{Code: "LONGL", Name: "Lao Bao Land Border (Quang Tri)", Type: "land"},
	{Code: "HUTIL", Name: "Huu Nghi Land Border (Lang Son)", Type: "land"},
	{Code: "CAOTL", Name: "Cao Treo Land Border (Ha Tinh)", Type: "land"},
	{Code: "XAMAN", Name: "Xa Mat Land Border (Tay Ninh)", Type: "land"},
	// Seaports
	{Code: "HCMSP", Name: "Ho Chi Minh City Seaport", Type: "seaport"},
	{Code: "HANSP", Name: "Hai Phong Seaport", Type: "seaport"},
	{Code: "DANSP", Name: "Da Nang Seaport", Type: "seaport"},
	{Code: "NHASP", Name: "Nha Trang Seaport", Type: "seaport"},
	{Code: "QUASP", Name: "Quang Ninh Seaport (Ha Long)", Type: "seaport"},
}

// IsKnownEntryPort reports whether a code appears in the checkpoint list.
func IsKnownEntryPort(code string) bool {
	for _, p := range EntryPorts {
		if p.Code == code {
			return true
		}
	}
	return false
}

// PassportTypes lists accepted passport categories.
var PassportTypes = []string{"ordinary", "diplomatic", "official", "other"}

// Purposes lists accepted trip purposes. Anything else normalizes to tourist.
var Purposes = []string{"tourist", "business", "visiting"}

// NormalizePurpose maps unknown purposes to tourist.
func NormalizePurpose(purpose string) string {
	for _, p := range Purposes {
		if p == purpose {
			return purpose
		}
	}
	return "tourist"
}

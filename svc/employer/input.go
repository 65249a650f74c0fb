package employer

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/jobportal/pkg/validator"
)

// OrganizationTypes and TeamSizes are the accepted values of the settings form.
var OrganizationTypes = []string{
	"Development",
	"Business",
	"Finance & Accounting",
	"It & Software",
	"Office Productivity",
	"Personal Development",
	"Design",
	"Marketing",
	"Photography & Video",
	"Healthcare",
	"Education",
	"Retail",
	"Manufacturing",
	"Hospitality",
	"Consulting",
	"Real Estate",
	"Legal",
	"Other",
}

var TeamSizes = []string{
	"Just me",
	"2-10 Employees",
	"11-50 Employees",
	"51-200 Employees",
	"201-500 Employees",
	"501-1000 Employees",
	"1001+ Employees",
}

func init() {
	validator.RegisterEnum("organization_type", OrganizationTypes...)
	validator.RegisterEnum("team_size", TeamSizes...)
}

// UpdateInput is the employer settings form. Optional fields may be empty.
type UpdateInput struct {
	Name                string `json:"name" validate:"required,max=255"`
	Description         string `json:"description" validate:"min=10,max=2000"`
	OrganizationType    string `json:"organizationType" validate:"omitempty,organization_type"`
	TeamSize            string `json:"teamSize" validate:"omitempty,team_size"`
	YearOfEstablishment string `json:"yearOfEstablishment" validate:"required,len=4,numeric,year_since=1800"`
	AvatarURL           string `json:"avatarUrl" validate:"omitempty,url,max=500"`
	WebsiteURL          string `json:"websiteUrl" validate:"omitempty,url,max=500"`
	Location            string `json:"location" validate:"omitempty,max=255"`
	BannerImageURL      string `json:"bannerImageUrl" validate:"omitempty,url,max=500"`
}

const msgYearFormat = "4 Digit Year is Required"

var updateMessages = validator.Messages{
	"name.required":                      "Company Name is Required",
	"name.max":                           "Company name must not exceed 255 characters",
	"description.min":                    "Description is Required with Minimum 10 Characters",
	"description.max":                    "Description must not exceed 2000 characters",
	"organizationType.organization_type": "Please Select a Valid Organization Type",
	"teamSize.team_size":                 "Please Select a Valid Team Size",
	"yearOfEstablishment.required":       msgYearFormat,
	"yearOfEstablishment.len":            msgYearFormat,
	"yearOfEstablishment.numeric":        msgYearFormat,
	"yearOfEstablishment.year_since":     "Please Enter a Valid Year between 1800 and Current Year",
	"avatarUrl.max":                      "Avatar url must not exceed 500 Characters",
	"websiteUrl.max":                     "Website url must not exceed 500 Characters",
	"bannerImageUrl.max":                 "Banner Image url must not exceed 500 Characters",
	"location.max":                       "Location must not exceed 255 characters",
	"url":                                "Valid Url is Required",
}

// Validate trims every field in place and checks the form.
func (in *UpdateInput) Validate() error {
	for _, f := range []*string{
		&in.Name, &in.Description, &in.OrganizationType, &in.TeamSize,
		&in.YearOfEstablishment, &in.AvatarURL, &in.WebsiteURL, &in.Location, &in.BannerImageURL,
	} {
		*f = strings.TrimSpace(*f)
	}
	return validator.Struct(in, updateMessages)
}

// year returns the validated year of establishment.
func (in UpdateInput) year() int32 {
	y, _ := strconv.ParseInt(in.YearOfEstablishment, 10, 32)
	return int32(y)
}

// nullable maps empty optional fields to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

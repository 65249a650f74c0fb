package employer

import (
	"time"

	"github.com/google/uuid"
)

// Profile is an employer row.
type Profile struct {
	ID                  uuid.UUID `json:"id"`
	Name                *string   `json:"name"`
	Description         *string   `json:"description"`
	BannerImageURL      *string   `json:"bannerImageUrl"`
	OrganizationType    *string   `json:"organizationType"`
	TeamSize            *string   `json:"teamSize"`
	YearOfEstablishment *int32    `json:"yearOfEstablishment"`
	WebsiteURL          *string   `json:"websiteUrl"`
	Location            *string   `json:"location"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Details is the profile view served to the signed in employer.
type Details struct {
	Profile
	AvatarURL        *string `json:"avatarUrl"`
	ProfileCompleted bool    `json:"isProfileCompleted"`
}

func newDetails(p Profile, avatarURL *string) Details {
	return Details{
		Profile:   p,
		AvatarURL: avatarURL,
		ProfileCompleted: present(p.Name) &&
			present(p.Description) &&
			present(avatarURL) &&
			present(p.OrganizationType) &&
			p.YearOfEstablishment != nil,
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}

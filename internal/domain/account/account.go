package account

import "strings"

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleEmployer  Role = "EMPLOYER"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole normalizes a user-supplied role value.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleCandidate:
		return RoleCandidate, true
	case RoleEmployer:
		return RoleEmployer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`

	CompanyName        string   `json:"companyName,omitempty"`
	CompanyLogo        string   `json:"companyLogo,omitempty"`
	ProfilePic         string   `json:"profilePic,omitempty"`
	ResumeURL          string   `json:"resumeUrl,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	Location           string   `json:"location,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Website            string   `json:"website,omitempty"`
	GithubURL          string   `json:"githubUrl,omitempty"`
	LinkedinURL        string   `json:"linkedinUrl,omitempty"`
	TeamPhotos         []string `json:"teamPhotos,omitempty"`
	CultureDescription string   `json:"cultureDescription,omitempty"`

	// PasswordHash is kept only in the accounts collection, never in the
	// session snapshot.
	PasswordHash string `json:"passwordHash,omitempty"`
}

// WithoutCredential returns a copy safe to expose as the session account.
func (a Account) WithoutCredential() Account {
	a.PasswordHash = ""
	return a
}

// Patch carries a partial profile update; nil fields are left untouched.
type Patch struct {
	Name               *string   `json:"name,omitempty"`
	CompanyName        *string   `json:"companyName,omitempty"`
	CompanyLogo        *string   `json:"companyLogo,omitempty"`
	ProfilePic         *string   `json:"profilePic,omitempty"`
	ResumeURL          *string   `json:"resumeUrl,omitempty"`
	Skills             *[]string `json:"skills,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Bio                *string   `json:"bio,omitempty"`
	Website            *string   `json:"website,omitempty"`
	GithubURL          *string   `json:"githubUrl,omitempty"`
	LinkedinURL        *string   `json:"linkedinUrl,omitempty"`
	TeamPhotos         *[]string `json:"teamPhotos,omitempty"`
	CultureDescription *string   `json:"cultureDescription,omitempty"`
}

// Apply merges the patch into the account.
func (p Patch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.CompanyName != nil {
		a.CompanyName = *p.CompanyName
	}
	if p.CompanyLogo != nil {
		a.CompanyLogo = *p.CompanyLogo
	}
	if p.ProfilePic != nil {
		a.ProfilePic = *p.ProfilePic
	}
	if p.ResumeURL != nil {
		a.ResumeURL = *p.ResumeURL
	}
	if p.Skills != nil {
		a.Skills = *p.Skills
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	if p.Website != nil {
		a.Website = *p.Website
	}
	if p.GithubURL != nil {
		a.GithubURL = *p.GithubURL
	}
	if p.LinkedinURL != nil {
		a.LinkedinURL = *p.LinkedinURL
	}
	if p.TeamPhotos != nil {
		a.TeamPhotos = *p.TeamPhotos
	}
	if p.CultureDescription != nil {
		a.CultureDescription = *p.CultureDescription
	}
}

package domain

type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (p Profile) FullName() string {
	return CoalesceStr(p.FirstName+" "+p.LastName, p.Email)
}

func (p Profile) Validate() error {
	return Require(
		RequiredField{"first name", p.FirstName},
		RequiredField{"last name", p.LastName},
		RequiredField{"email", p.Email},
	)
}

type Company struct {
	Name    string
	Address string
	TaxID   string
	License string
}

func (c Company) Validate() error {
	return Require(RequiredField{"company name", c.Name})
}

// NotificationPrefs are the per-channel alert toggles.
type NotificationPrefs struct {
	Email    bool
	Leads    bool
	Invoices bool
	Tasks    bool
}

type TeamMember struct {
	Name  string
	Role  TeamRole
	Email string
}

// Initials returns e.g. "JD" for "John Doe".
func (m TeamMember) Initials() string {
	return Initials(m.Name)
}

type Settings struct {
	Profile          Profile
	Company          Company
	Notifications    NotificationPrefs
	TwoFactorEnabled bool
	Team             []TeamMember
}

// PasswordChange carries the password form. Nothing is stored; only
// presence of each field is checked.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

func (p PasswordChange) Validate() error {
	return Require(
		RequiredField{"current password", p.Current},
		RequiredField{"new password", p.New},
		RequiredField{"confirm password", p.Confirm},
	)
}

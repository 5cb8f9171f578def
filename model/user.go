package model

// MaxPrescriptions is how many prescriptions a user keeps, most recent first.
const MaxPrescriptions = 5

// User is a registered patient. Passwords are stored as entered.
type User struct {
	ID            string         `json:"id" example:"rahim01"`
	Name          string         `json:"name" example:"Rahim Uddin"`
	Password      string         `json:"password,omitempty" example:"secret"`
	Age           string         `json:"age,omitempty" example:"42"`
	Gender        string         `json:"gender,omitempty" example:"পুরুষ"`
	BloodGroup    string         `json:"bloodGroup,omitempty" example:"B+"`
	Address       string         `json:"address,omitempty" example:"Mirpur, Dhaka"`
	Mobile        string         `json:"mobile,omitempty" example:"01700000000"`
	ProfilePic    string         `json:"profilePic,omitempty"`
	ThemeIndex    int            `json:"themeIndex"`
	Prescriptions []Prescription `json:"prescriptions,omitempty"`
}

// Identity returns the demographic defaults used when a medical record leaves them blank.
func (u User) Identity() PatientIdentity {
	return PatientIdentity{ID: u.ID, Name: u.Name, Age: u.Age, Gender: u.Gender}
}

// WithPrescription returns a copy of u with p prepended and the history
// trimmed to MaxPrescriptions, dropping the oldest entries.
func (u User) WithPrescription(p Prescription) User {
	list := make([]Prescription, 0, MaxPrescriptions)
	list = append(list, p)
	for _, existing := range u.Prescriptions {
		if len(list) == MaxPrescriptions {
			break
		}
		list = append(list, existing)
	}
	u.Prescriptions = list
	return u
}

// Clone returns a deep copy so callers never share the prescription slice.
func (u User) Clone() User {
	if u.Prescriptions != nil {
		ps := make([]Prescription, len(u.Prescriptions))
		for i, p := range u.Prescriptions {
			ps[i] = p.Clone()
		}
		u.Prescriptions = ps
	}
	return u
}

// PatientIdentity is the subset of a user the diagnosis prompt falls back to.
type PatientIdentity struct {
	ID     string
	Name   string
	Age    string
	Gender string
}

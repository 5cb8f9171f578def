package model

import (
	"encoding/json"
	"fmt"
)

// Prescription print themes understood by the client.
var PrescriptionThemes = []string{"Standard", "Modern", "Minimal", "Classic"}

// WelcomeBanner is the greeting card on the patient home panel.
type WelcomeBanner struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// AdminSettings is the process-wide singleton the admin edits as a whole.
type AdminSettings struct {
	HomeHeaderBanner   string        `json:"homeHeaderBanner"`
	HomeFooterBanner   string        `json:"homeFooterBanner"`
	FooterBannerText   string        `json:"footerBannerText"`
	PrescriptionHeader string        `json:"prescriptionHeader"`
	PrescriptionFooter string        `json:"prescriptionFooter"`
	PrescriptionTheme  string        `json:"prescriptionTheme"`
	DigitalSignature   string        `json:"digitalSignature"`
	WelcomeBanner      WelcomeBanner `json:"welcomeBanner"`
}

// DefaultAdminSettings returns the settings used before the admin changes anything.
func DefaultAdminSettings() AdminSettings {
	return AdminSettings{
		HomeHeaderBanner:   "https://images.unsplash.com/photo-1576091160550-2173dba999ef?auto=format&fit=crop&w=1200&h=300&q=80",
		HomeFooterBanner:   "https://images.unsplash.com/photo-1505751172876-fa1923c5c528?auto=format&fit=crop&w=1200&h=400&q=80",
		FooterBannerText:   "রিমন মাহমুদ রোমান, মোবাইল : 01617365471, ইমেইল: romantechgp@gmail.com",
		PrescriptionHeader: "Medi Help Digital Medical Services",
		PrescriptionFooter: "এটা একটি এআই দ্বারা জেনারেট প্রাথমিক ধারণা, তাই যেকোনো প্রয়োজনে ডাক্তারের সঙ্গে যোগাযোগ করুন",
		PrescriptionTheme:  "Standard",
		DigitalSignature:   "https://upload.wikimedia.org/wikipedia/commons/f/f8/Signature_of_John_Hancock.png",
		WelcomeBanner: WelcomeBanner{
			Text:  "সুস্বাগতম! আমরা আপনার সুস্বাস্থ্য কামনায় সর্বদা নিয়োজিত। আপনার যেকোনো সমস্যায় আমরা পাশে আছি।",
			Image: "https://images.unsplash.com/photo-1516549655169-df83a0774514?auto=format&fit=crop&w=600&h=400&q=80",
		},
	}
}

// MergeAdminSettings decodes a persisted, possibly partial, settings object on
// top of the defaults. Fields missing from raw (nested ones included) keep
// their default value.
func MergeAdminSettings(raw []byte) (AdminSettings, error) {
	s := DefaultAdminSettings()
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultAdminSettings(), fmt.Errorf("decode admin settings: %w", err)
	}
	return s, nil
}

// IsValidPrescriptionTheme reports whether theme is one of PrescriptionThemes.
func IsValidPrescriptionTheme(theme string) bool {
	for _, t := range PrescriptionThemes {
		if t == theme {
			return true
		}
	}
	return false
}

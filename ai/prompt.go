package ai

import (
	"fmt"
	"strings"

	"github.com/ariebrainware/medi-help/model"
)

var diagnosisSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"diagnosis": {Type: TypeString},
		"advice":    {Type: TypeString},
		"medicines": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"englishName": {Type: TypeString},
					"bengaliName": {Type: TypeString},
					"genericName": {Type: TypeString},
					"purpose":     {Type: TypeString},
					"dosage":      {Type: TypeString},
				},
				Required: []string{"englishName", "bengaliName", "genericName", "purpose", "dosage"},
			},
		},
	},
	Required: []string{"diagnosis", "advice", "medicines"},
}

var alternativesSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name":    {Type: TypeString},
			"company": {Type: TypeString},
			"price":   {Type: TypeString},
			"generic": {Type: TypeString},
		},
		Required: []string{"name", "company", "price", "generic"},
	},
}

// patient is the demographic block after record/user fallback.
type patient struct {
	Name   string
	Age    string
	Gender string
}

func resolvePatient(record model.MedicalRecord, who model.PatientIdentity) patient {
	return patient{
		Name:   firstNonEmpty(record.PatientName, who.Name),
		Age:    firstNonEmpty(record.PatientAge, who.Age),
		Gender: firstNonEmpty(record.PatientGender, who.Gender),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// joinSignals joins the selected tags and the free text, skipping blanks.
func joinSignals(tags []string, free string) string {
	parts := make([]string, 0, len(tags)+1)
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, t)
		}
	}
	if free = strings.TrimSpace(free); free != "" {
		parts = append(parts, free)
	}
	return strings.Join(parts, ", ")
}

func formatTests(tests []model.TestResult) string {
	parts := make([]string, 0, len(tests))
	for _, t := range tests {
		name := strings.TrimSpace(t.Name)
		result := strings.TrimSpace(t.Result)
		if name == "" || result == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, result))
	}
	return strings.Join(parts, "; ")
}

func diagnosisPrompt(p patient, record model.MedicalRecord) string {
	var b strings.Builder
	b.WriteString("একজন বিশেষজ্ঞ ডাক্তার হিসেবে নিচের তথ্যের ভিত্তিতে একটি ডিজিটাল প্রেসক্রিপশন তৈরি করুন:\n")
	fmt.Fprintf(&b, "রোগীর নাম: %s, বয়স: %s, লিঙ্গ: %s\n", p.Name, p.Age, p.Gender)
	fmt.Fprintf(&b, "লক্ষণসমূহ: %s\n", joinSignals(record.Symptoms, record.CustomSymptoms))
	fmt.Fprintf(&b, "পূর্ববর্তী রোগ: %s\n", joinSignals(record.PrevIllnesses, record.CustomPrevIllnesses))
	fmt.Fprintf(&b, "বর্তমান ঔষধ: %s\n", strings.TrimSpace(record.PastMeds))
	if tests := formatTests(record.Tests); tests != "" {
		fmt.Fprintf(&b, "পরীক্ষার ফলাফল: %s\n", tests)
	}
	fmt.Fprintf(&b, "ভাইটালস: বিপি: %s, ডায়াবেটিস: %s\n\n", strings.TrimSpace(record.BP), strings.TrimSpace(record.Diabetes))
	b.WriteString("আউটপুট অবশ্যই শুধুমাত্র JSON ফরম্যাটে হতে হবে।")
	return b.String()
}

func medicineInfoPrompt(query string) string {
	return fmt.Sprintf("ঔষধ \"%s\" এর কাজ, ব্যবহার এবং সতর্কতা বাংলায় বিস্তারিত লিখুন।", strings.TrimSpace(query))
}

func alternativesPrompt(query string) string {
	return fmt.Sprintf("\"%s\" ঔষধের বাংলাদেশের সেরা বিকল্প ব্র্যান্ডগুলোর একটি তালিকা জেসন ফরম্যাটে দিন।", strings.TrimSpace(query))
}

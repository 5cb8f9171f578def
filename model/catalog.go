package model

// Theme is a colour theme a patient can pick for their panel.
type Theme struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

var DefaultSymptoms = []string{
	"জ্বর", "কাশি", "মাথা ব্যথা", "বুক ব্যথা", "পেট ব্যথা",
	"শ্বাসকষ্ট", "দুর্বলতা", "বমি বমি ভাব", "ডায়রিয়া", "গলা ব্যথা",
	"অরুচি", "শরীরে লাল দাগ", "পিঠ ব্যথা", "পায়ে পানি আসা", "মাথা ঘোরা",
	"অনিদ্রা", "বেশি পিপাসা", "ওজন কমে যাওয়া", "চোখে ঝাপসা দেখা", "চুলকানি",
}

var PrevIllnesses = []string{
	"ডায়াবেটিস", "উচ্চ রক্তচাপ", "হাঁপানি (Asthma)", "কিডনি রোগ", "লিভার রোগ",
	"হৃদরোগ", "গ্যাস্ট্রিক", "থাইরয়েড", "মানসিক রোগ", "টিউমার",
	"ক্যান্সার", "আর্থ্রাইটিস", "এলার্জি", "স্ট্রোক", "যক্ষ্মা",
}

var DefaultTests = []string{
	"CBC", "Blood Sugar (RBS)", "Blood Sugar (FBS)", "Lipid Profile", "Liver Function Test (LFT)",
	"Serum Creatinine", "Urine RE/ME", "Chest X-Ray", "ECG", "Ultrasonography (USG)",
	"TSH", "HbA1c", "HBsAg", "Vitamin D", "Serum Calcium",
	"Electrolytes", "Bilirubin", "Uric Acid", "Echocardiogram", "MRI",
}

var Themes = []Theme{
	{Name: "নীল আকাশ (Blue)", Class: "from-blue-500 to-indigo-600"},
	{Name: "সবুজ প্রকৃতি (Green)", Class: "from-green-500 to-teal-600"},
	{Name: "উজ্জ্বল সূর্য (Yellow)", Class: "from-yellow-400 to-orange-500"},
	{Name: "গোলাপী ভালোবাসা (Pink)", Class: "from-pink-500 to-rose-600"},
	{Name: "বেগুনী রাজকীয় (Purple)", Class: "from-purple-500 to-indigo-700"},
	{Name: "গভীর সমুদ্র (Cyan)", Class: "from-cyan-600 to-blue-800"},
	{Name: "ধূসর আভিজাত্য (Dark)", Class: "from-gray-700 to-slate-900"},
	{Name: "লাল উষ্ণতা (Red)", Class: "from-red-500 to-orange-600"},
	{Name: "পান্না সবুজ (Emerald)", Class: "from-emerald-500 to-green-700"},
	{Name: "সূর্যাস্ত (Sunset)", Class: "from-orange-500 to-red-700"},
}

// IsValidThemeIndex reports whether i selects one of Themes.
func IsValidThemeIndex(i int) bool {
	return i >= 0 && i < len(Themes)
}

package models

type VideoResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// KnowledgeBaseEntry indexes one reference page, whether or not it has ever
// been studied through a timed session.
type KnowledgeBaseEntry struct {
	PageNumber string          `json:"pageNumber"`
	Topic      string          `json:"topic"`
	Subject    string          `json:"subject"`
	System     string          `json:"system"`
	AnkiTotal  int             `json:"ankiTotal"`
	VideoLinks []VideoResource `json:"videoLinks"`
	Tags       []string        `json:"tags"`
	Notes      string          `json:"notes"`
}

// Defaults used when planning references a page before any study event.
const (
	DefaultSubject = "Other"
	DefaultSystem  = "General Principles"
)

var Categories = []string{
	"Pathology", "Physiology", "Pharmacology", "Microbiology", "Immunology",
	"Biochem", "Anatomy", "Public Health", "Ethics", "Other",
}

var Systems = []string{
	"General Principles", "Cardiovascular", "Respiratory", "Renal",
	"Gastrointestinal", "Hematology/Oncology", "Neurology", "Psychiatry",
	"Endocrine", "Reproductive", "Musculoskeletal", "Dermatology",
}

// DefaultIntervals is the spaced-repetition ladder, in hours.
var DefaultIntervals = []int{24, 72, 168, 336}

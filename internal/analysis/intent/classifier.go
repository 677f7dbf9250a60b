package intent

import "strings"

// Topic labels a recognized admissions query category.
type Topic string

const (
	General   Topic = "general"
	Admission Topic = "admission"
	Fee       Topic = "fee"
	Exam      Topic = "exam"
	Hostel    Topic = "hostel"
	Placement Topic = "placement"
	Syllabus  Topic = "syllabus"
	Course    Topic = "course"
)

var keywordBuckets = map[Topic][]string{
	Admission: {
		"admission", "apply", "entrance", "how to get admission", "application form",
		"eligibility", "enroll", "register",
	},
	Fee: {
		"fee", "fees", "payment", "pay", "tuition", "charges",
	},
	Exam: {
		"exam", "result", "datesheet", "marksheet", "examination",
	},
	Hostel: {
		"hostel", "accommodation", "rooms", "residence",
	},
	Placement: {
		"placement", "jobs", "career", "internship", "recruit",
	},
	Syllabus: {
		"syllabus", "subjects", "curriculum",
	},
	Course: {
		"course", "courses", "program", "programme", "degree", "department",
	},
}

// matchOrder keeps classification deterministic when an utterance mentions
// several topics. Earlier entries win.
var matchOrder = []Topic{Admission, Fee, Exam, Hostel, Placement, Syllabus, Course}

// Classify lower-cases the utterance and checks substring membership against
// the topic keyword table. Unrecognized input maps to General.
func Classify(text string) Topic {
	m := strings.ToLower(strings.TrimSpace(text))
	if m == "" {
		return General
	}

	for _, topic := range matchOrder {
		if containsAny(m, keywordBuckets[topic]) {
			return topic
		}
	}
	return General
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

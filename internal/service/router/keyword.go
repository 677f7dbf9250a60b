package router

import (
	"context"

	"github.com/puassist/backend/internal/analysis/intent"
)

// DefaultFeePDFURL points at the downloadable fee structure document served
// alongside fee replies.
const DefaultFeePDFURL = "/files/pu_fee_structure.pdf"

type topicAnswer struct {
	reply     string
	followUps []string
}

var cannedAnswers = map[intent.Topic]topicAnswer{
	intent.Admission: {
		reply: "Our admission process starts in March and ends in July. " +
			"You can fill the application form on the [admissions portal](https://admissions.puchd.ac.in/).",
		followUps: []string{"Fee Structure", "Entrance exam dates", "Hostel facilities"},
	},
	intent.Fee: {
		reply: "The average annual fee is around ₹80,000, depending on the course. " +
			"Fees can be paid on the [online payment portal](https://payonline.puchd.ac.in/).",
		followUps: []string{"Admission Process", "Scholarship options", "Course Details"},
	},
	intent.Exam: {
		reply: "Datesheets and results are published on the examination portal: " +
			"[datesheets](https://exams.puchd.ac.in/datesheet.php) and [results](https://results.puexam.in/).",
		followUps: []string{"Syllabus details", "Admission Process", "Course Details"},
	},
	intent.Hostel: {
		reply: "The university offers separate hostels for boys and girls on campus. " +
			"Details and allotment forms are on the [hostels page](https://hostels.puchd.ac.in/).",
		followUps: []string{"Fee Structure", "Admission Process", "Campus facilities"},
	},
	intent.Placement: {
		reply: "Campus placements are coordinated by the Central Placement Cell. " +
			"See the [placement cell site](https://cpc.puchd.ac.in/) for recruiters and statistics.",
		followUps: []string{"Course Details", "Admission Process", "Internship support"},
	},
	intent.Syllabus: {
		reply: "Course-wise syllabi are available on the [syllabus page](https://puchd.ac.in/syllabus.php).",
		followUps: []string{"Course Details", "Exam datesheet", "Admission Process"},
	},
	intent.Course: {
		reply: "The university offers undergraduate, postgraduate and doctoral programmes " +
			"across engineering, law, sciences and humanities. Browse departments on the " +
			"[official website](https://puchd.ac.in/).",
		followUps: []string{"Admission Process", "Fee Structure", "Placement record"},
	},
}

// KeywordResponder answers from a static topic table with no upstream
// dependency. Deterministic; its only failure mode is never reached because
// unmatched input falls through to a generic echo reply.
type KeywordResponder struct {
	feePDFURL string
}

// NewKeywordResponder builds the table-driven responder. An empty pdfURL
// selects the default fee document path.
func NewKeywordResponder(pdfURL string) *KeywordResponder {
	if pdfURL == "" {
		pdfURL = DefaultFeePDFURL
	}
	return &KeywordResponder{feePDFURL: pdfURL}
}

// Respond classifies the utterance by keyword and returns the canned answer
// for its topic. Fee replies additionally carry the fee structure document.
func (k *KeywordResponder) Respond(_ context.Context, message string) (Response, error) {
	topic := intent.Classify(message)

	answer, ok := cannedAnswers[topic]
	if !ok {
		return Response{Reply: "I got your message: " + message}, nil
	}

	resp := Response{
		Reply:     answer.reply,
		FollowUps: append([]string(nil), answer.followUps...),
	}
	if topic == intent.Fee {
		resp.AttachmentURL = k.feePDFURL
	}
	return resp, nil
}

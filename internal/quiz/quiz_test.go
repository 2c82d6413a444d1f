package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"
)

const testBankCSV = `id,class,subject,topic,difficulty,question_text,option_a,option_b,option_c,option_d,correct_answer,explanation
q1,10,Math,Algebra,easy,What is 2x when x=3?,4,6,8,9,B,2*3 = 6
q2,10,Math,Algebra,medium,"Solve x^2 = 9, x > 0",1,2,3,4,C,sqrt(9) = 3
q3,10,Math,Geometry,easy,Angles in a triangle sum to?,90,180,270,360,B,Triangle angle sum is 180
q4,10,Science,Cells,easy,Powerhouse of the cell?,Nucleus,Ribosome,Mitochondria,Golgi,C,Mitochondria produce ATP
q5,9,Science,Motion,hard,Unit of acceleration?,m/s,m/s^2,N,J,B,Acceleration is m/s^2
`

func testBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := ReadBank(strings.NewReader(testBankCSV))
	if err != nil {
		t.Fatalf("read bank: %v", err)
	}
	return bank
}

func TestReadBank(t *testing.T) {
	bank := testBank(t)

	if len(bank.Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(bank.Questions))
	}

	q := bank.Questions[1]
	if q.ID != "q2" {
		t.Errorf("id = %q, want q2", q.ID)
	}
	if q.Text != "Solve x^2 = 9, x > 0" {
		t.Errorf("quoted field mishandled: %q", q.Text)
	}
	if q.Options != [4]string{"1", "2", "3", "4"} {
		t.Errorf("options = %v", q.Options)
	}
	if q.Correct != "C" {
		t.Errorf("correct = %q, want C", q.Correct)
	}
}

func TestReadBank_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"header only", "id,class,subject,topic,difficulty,question_text,option_a,option_b,option_c,option_d,correct_answer,explanation\n"},
		{"wrong header", "id,subject\nq1,Math\n"},
		{"bad correct answer", "id,class,subject,topic,difficulty,question_text,option_a,option_b,option_c,option_d,correct_answer,explanation\nq1,10,Math,Algebra,easy,Q?,1,2,3,4,E,x\n"},
		{"missing id", "id,class,subject,topic,difficulty,question_text,option_a,option_b,option_c,option_d,correct_answer,explanation\n,10,Math,Algebra,easy,Q?,1,2,3,4,A,x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadBank(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSelect(t *testing.T) {
	bank := testBank(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"q1", "q2", "q3", "q4", "q5"}},
		{"by subject", Filter{Subject: "Math"}, []string{"q1", "q2", "q3"}},
		{"by topic", Filter{Topic: "Algebra"}, []string{"q1", "q2"}},
		{"case insensitive", Filter{Subject: "math", Topic: "geometry"}, []string{"q3"}},
		{"by difficulty", Filter{Difficulty: "easy"}, []string{"q1", "q3", "q4"}},
		{"by class", Filter{Class: "9"}, []string{"q5"}},
		{"no match", Filter{Subject: "History"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bank.Select(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("selected %d, want %d", len(got), len(tt.want))
			}
			for i, q := range got {
				if q.ID != tt.want[i] {
					t.Errorf("selected[%d] = %s, want %s", i, q.ID, tt.want[i])
				}
			}
		})
	}
}

func TestSubjects(t *testing.T) {
	bank := testBank(t)

	got := bank.Subjects()
	want := []string{"Math", "Science"}
	if len(got) != len(want) {
		t.Fatalf("subjects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subjects[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewSession_CountAndNoMatch(t *testing.T) {
	bank := testBank(t)

	sess, err := NewSession(bank, Filter{Subject: "Math"}, 2, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if len(sess.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(sess.Questions))
	}
	// nil source keeps bank order.
	if sess.Questions[0].ID != "q1" || sess.Questions[1].ID != "q2" {
		t.Errorf("order = %s, %s, want q1, q2", sess.Questions[0].ID, sess.Questions[1].ID)
	}

	if _, err := NewSession(bank, Filter{Subject: "History"}, 5, nil); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestNewSession_ShuffleDeterministic(t *testing.T) {
	bank := testBank(t)

	first, err := NewSession(bank, Filter{}, 0, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("first session: %v", err)
	}
	second, err := NewSession(bank, Filter{}, 0, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("second session: %v", err)
	}

	for i := range first.Questions {
		if first.Questions[i].ID != second.Questions[i].ID {
			t.Fatalf("same seed gave different orders at %d: %s vs %s",
				i, first.Questions[i].ID, second.Questions[i].ID)
		}
	}
}

func TestAnswerAndGrade(t *testing.T) {
	bank := testBank(t)
	sess, err := NewSession(bank, Filter{Subject: "Math"}, 0, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := sess.Answer(0, "b"); err != nil {
		t.Fatalf("answer 0: %v", err)
	}
	if err := sess.Answer(1, "A"); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	// Question 2 left unanswered.

	res := sess.Grade()
	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
	if res.Answered != 2 {
		t.Errorf("answered = %d, want 2", res.Answered)
	}
	if res.Correct != 1 {
		t.Errorf("correct = %d, want 1", res.Correct)
	}
	if !res.Questions[0].Correct {
		t.Error("lowercase answer should match")
	}
	if res.Questions[1].Correct {
		t.Error("q2 answered A, correct is C")
	}
	if res.Questions[2].Given != "" || res.Questions[2].Correct {
		t.Error("unanswered question should be wrong with empty given")
	}

	wantPct := 1.0 / 3.0 * 100
	if diff := res.Percent() - wantPct; diff > 0.001 || diff < -0.001 {
		t.Errorf("percent = %v, want %v", res.Percent(), wantPct)
	}
}

func TestAnswer_Invalid(t *testing.T) {
	bank := testBank(t)
	sess, err := NewSession(bank, Filter{}, 1, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := sess.Answer(0, "E"); err == nil {
		t.Error("expected error for answer E")
	}
	if err := sess.Answer(5, "A"); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

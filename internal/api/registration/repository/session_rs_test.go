package registrationRepository

import (
	"database/sql"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestMakeRegistrationSessionAnswers(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := &sessionRepository{log: logger}

	valid := repo.makeRegistrationSession(SessionDB{
		ID:      sql.NullString{String: "session-1", Valid: true},
		Answers: sql.NullString{String: `{"name":"Ravi Kumar","location":"Mumbai"}`, Valid: true},
	})
	if valid.Answers["name"] != "Ravi Kumar" || valid.Answers["location"] != "Mumbai" {
		t.Errorf("answers = %v", valid.Answers)
	}
	if len(hook.Entries) != 0 {
		t.Errorf("valid blob must not log, got %d entries", len(hook.Entries))
	}

	corrupted := repo.makeRegistrationSession(SessionDB{
		ID:      sql.NullString{String: "session-2", Valid: true},
		Answers: sql.NullString{String: `{"name":`, Valid: true},
	})
	if len(corrupted.Answers) != 0 {
		t.Errorf("corrupted blob should yield empty answers, got %v", corrupted.Answers)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatal("corrupted blob must be logged at error level")
	}
	if hook.LastEntry().Data["session_id"] != "session-2" {
		t.Errorf("log entry missing session id: %v", hook.LastEntry().Data)
	}

	empty := repo.makeRegistrationSession(SessionDB{
		ID: sql.NullString{String: "session-3", Valid: true},
	})
	if empty.Answers == nil || len(empty.Answers) != 0 {
		t.Errorf("null blob should yield an empty non-nil map, got %v", empty.Answers)
	}
}

package registrationService

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"ArtisanCraft/internal/api/artisan"
	"ArtisanCraft/internal/api/registration"
	registrationRepository "ArtisanCraft/internal/api/registration/repository"
	"ArtisanCraft/internal/entity"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/utils"
	"ArtisanCraft/pkg/wizard"

	"github.com/sirupsen/logrus"
)

type fakeSessionStore struct {
	sessions map[string]entity.RegistrationSession
}

func (f *fakeSessionStore) CreateSession(_ context.Context, session entity.RegistrationSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) GetSessionByID(_ context.Context, id string) (entity.RegistrationSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return entity.RegistrationSession{}, registration.ErrSessionNotFound
	}
	answers := make(map[string]string, len(session.Answers))
	for k, v := range session.Answers {
		answers[k] = v
	}
	session.Answers = answers
	return session, nil
}

func (f *fakeSessionStore) UpdateSession(_ context.Context, session entity.RegistrationSession) error {
	if _, ok := f.sessions[session.ID]; !ok {
		return registration.ErrSessionNotFound
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) CleanupOldSessions(_ context.Context) error {
	return nil
}

type fakeAttemptStore struct {
	attempts []entity.RegistrationAttempt
}

func (f *fakeAttemptStore) CreateAttempt(_ context.Context, attempt entity.RegistrationAttempt) error {
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeAttemptStore) GetAttemptsBySessionID(_ context.Context, sessionID string) ([]entity.RegistrationAttempt, error) {
	var out []entity.RegistrationAttempt
	for _, attempt := range f.attempts {
		if attempt.SessionID == sessionID {
			out = append(out, attempt)
		}
	}
	return out, nil
}

type fakeRepository struct {
	sessions *fakeSessionStore
	attempts *fakeAttemptStore
}

func (f *fakeRepository) NewClient(_ bool) (registrationRepository.Client, error) {
	return registrationRepository.Client{
		Sessions: f.sessions,
		Attempts: f.attempts,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) TranscribeAudio(_ context.Context, _ []byte, _ string, _ string) (string, error) {
	return f.transcript, f.err
}

type fakeSynthesizer struct {
	err error
}

func (f *fakeSynthesizer) GenerateAudio(_ context.Context, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("audio"), nil
}

type fakeS3 struct{}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	return "https://bucket.test/" + file.Filename, nil
}

func (f *fakeS3) UploadFileFromBytes(_ []byte, fileName string, _ string) (string, error) {
	return "https://bucket.test/" + fileName, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return "https://bucket.test/" + fileName, nil
}

func (f *fakeS3) DeleteFile(_ string) error {
	return nil
}

type fakeRedis struct {
	prompts map[string]string
}

func (f *fakeRedis) SetPromptAudio(_ context.Context, language string, step int, url string, _ time.Duration) error {
	f.prompts[fmt.Sprintf("%s:%d", language, step)] = url
	return nil
}

func (f *fakeRedis) GetPromptAudio(_ context.Context, language string, step int) (string, error) {
	return f.prompts[fmt.Sprintf("%s:%d", language, step)], nil
}

type fakeArtisans struct {
	resp      artisan.ProvisionResponse
	err       error
	lastInput artisan.ProvisionInput
	calls     int
}

func (f *fakeArtisans) ProvisionVoiceArtisan(_ context.Context, _ artisan.VoiceRegisterRequest) (artisan.ProvisionResponse, error) {
	return f.resp, f.err
}

func (f *fakeArtisans) ProvisionPrehashed(_ context.Context, input artisan.ProvisionInput) (artisan.ProvisionResponse, error) {
	f.calls++
	f.lastInput = input
	return f.resp, f.err
}

func (f *fakeArtisans) GetArtisanByID(_ context.Context, _ string) (artisan.ArtisanResponse, error) {
	return artisan.ArtisanResponse{}, nil
}

func (f *fakeArtisans) ListArtisans(_ context.Context, _ artisan.ListArtisansQuery) (artisan.ListArtisansResponse, error) {
	return artisan.ListArtisansResponse{}, nil
}

type fixture struct {
	svc         RegistrationService
	sessions    *fakeSessionStore
	attempts    *fakeAttemptStore
	transcriber *fakeTranscriber
	artisans    *fakeArtisans
	bcryptUtils bcrypt.IBcrypt
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sessions := &fakeSessionStore{sessions: make(map[string]entity.RegistrationSession)}
	attempts := &fakeAttemptStore{}
	transcriber := &fakeTranscriber{}
	artisans := &fakeArtisans{resp: artisan.ProvisionResponse{ArtisanID: "artisan-1", UserID: "user-1"}}
	bcryptUtils := bcrypt.NewWithCost(4)

	svc := New(logger,
		&fakeRepository{sessions: sessions, attempts: attempts},
		artisans,
		transcriber,
		&fakeSynthesizer{},
		&fakeS3{},
		&fakeRedis{prompts: make(map[string]string)},
		bcryptUtils,
		utils.New(),
		registration.NewEventBroker(),
	)

	return &fixture{
		svc:         svc,
		sessions:    sessions,
		attempts:    attempts,
		transcriber: transcriber,
		artisans:    artisans,
		bcryptUtils: bcryptUtils,
	}
}

func audioFile(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake audio payload")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["audio"][0]
}

func (f *fixture) startSession(t *testing.T) string {
	t.Helper()
	resp, err := f.svc.StartSession(context.Background(), registration.StartSessionRequest{Language: "en-IN"})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return resp.ID
}

func TestStartSession(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.StartSession(context.Background(), registration.StartSessionRequest{Language: "hi-IN"})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if resp.CurrentStep != 0 {
		t.Errorf("current step = %d, want 0", resp.CurrentStep)
	}
	if resp.Status != string(entity.SessionInProgress) {
		t.Errorf("status = %s, want %s", resp.Status, entity.SessionInProgress)
	}
	if resp.Question == "" {
		t.Error("expected a question for step 0")
	}

	_, err = f.svc.StartSession(context.Background(), registration.StartSessionRequest{Language: "de-DE"})
	if !errors.Is(err, registration.ErrUnsupportedLanguage) {
		t.Errorf("StartSession(de-DE) error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestSubmitAttemptAcceptsAnswer(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	f.transcriber.transcript = "mary jane smith"
	result, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "answer.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !result.Accepted {
		t.Fatalf("expected answer to be accepted, got error %q", result.Error)
	}
	if result.Normalized != "Mary Jane Smith" {
		t.Errorf("normalized = %q, want %q", result.Normalized, "Mary Jane Smith")
	}

	session := f.sessions.sessions[sessionID]
	if session.CurrentStep != 1 {
		t.Errorf("current step = %d, want 1", session.CurrentStep)
	}
	if session.Answers[wizard.FieldName] != "Mary Jane Smith" {
		t.Errorf("stored name = %q", session.Answers[wizard.FieldName])
	}
	if session.AttemptID != "" {
		t.Error("attempt should be closed after an accepted answer")
	}
	if session.RetryCount != 0 {
		t.Errorf("retry count = %d, want 0", session.RetryCount)
	}
}

func TestSubmitAttemptStaleAfterSupersede(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	first, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}
	second, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	f.transcriber.transcript = "ravi kumar"
	_, err = f.svc.SubmitAttempt(context.Background(), sessionID, first.AttemptID, audioFile(t, "late.webm"))
	if !errors.Is(err, registration.ErrStaleAttempt) {
		t.Errorf("superseded attempt error = %v, want ErrStaleAttempt", err)
	}

	result, err := f.svc.SubmitAttempt(context.Background(), sessionID, second.AttemptID, audioFile(t, "answer.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt on live attempt: %v", err)
	}
	if !result.Accepted {
		t.Errorf("live attempt should still be usable, got error %q", result.Error)
	}
}

func TestSubmitAttemptExpired(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	session := f.sessions.sessions[sessionID]
	session.AttemptExpiresAt = time.Now().Add(-time.Second)
	f.sessions.sessions[sessionID] = session

	f.transcriber.transcript = "ravi kumar"
	_, err = f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "slow.webm"))
	if !errors.Is(err, registration.ErrAttemptExpired) {
		t.Fatalf("expired attempt error = %v, want ErrAttemptExpired", err)
	}

	session = f.sessions.sessions[sessionID]
	if session.AttemptID != "" {
		t.Error("expired attempt should be closed")
	}
	if session.CurrentStep != 0 {
		t.Errorf("expiry must not advance the step, got %d", session.CurrentStep)
	}
}

func TestRetryBoundFallsBackToManualEntry(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	f.transcriber.transcript = "x"

	for i := 0; i < defaultMaxRetries; i++ {
		attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
		if err != nil {
			t.Fatalf("OpenAttempt %d: %v", i, err)
		}
		result, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "bad.webm"))
		if err != nil {
			t.Fatalf("SubmitAttempt %d: %v", i, err)
		}
		if result.Accepted {
			t.Fatalf("attempt %d should have been rejected", i)
		}
		if result.Error == "" {
			t.Fatalf("rejected attempt %d should carry an error message", i)
		}
	}

	session := f.sessions.sessions[sessionID]
	if session.Status != entity.SessionManualEntry {
		t.Fatalf("status = %s, want %s", session.Status, entity.SessionManualEntry)
	}

	_, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if !errors.Is(err, registration.ErrManualEntryRequired) {
		t.Errorf("OpenAttempt in manual entry error = %v, want ErrManualEntryRequired", err)
	}
}

func TestNoSpeechRejected(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	f.transcriber.transcript = ""
	result, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "silence.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if result.Accepted {
		t.Error("silence should not be accepted")
	}

	session := f.sessions.sessions[sessionID]
	if session.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", session.RetryCount)
	}
}

func TestPhoneSkipAccepted(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	session := f.sessions.sessions[sessionID]
	session.CurrentStep = 3
	f.sessions.sessions[sessionID] = session

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	f.transcriber.transcript = "skip"
	result, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "skip.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !result.Accepted || !result.Skipped {
		t.Errorf("skip on phone step: accepted=%v skipped=%v, want both true", result.Accepted, result.Skipped)
	}

	session = f.sessions.sessions[sessionID]
	if session.CurrentStep != 4 {
		t.Errorf("current step = %d, want 4", session.CurrentStep)
	}
	if _, ok := session.Answers[wizard.FieldPhone]; !ok {
		t.Error("skipped phone should still be stored as an empty answer")
	}
}

func TestPasswordAndConfirmationFlow(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	session := f.sessions.sessions[sessionID]
	session.CurrentStep = 5
	f.sessions.sessions[sessionID] = session

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}

	f.transcriber.transcript = "Secret1!"
	result, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "pw.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt password: %v", err)
	}
	if !result.Accepted {
		t.Fatalf("password should be accepted, got %q", result.Error)
	}
	if result.Transcript != "" || result.Normalized != "" {
		t.Error("password transcript must never leave the service")
	}

	session = f.sessions.sessions[sessionID]
	if session.PasswordHash == "" {
		t.Fatal("expected a stored password hash")
	}
	if _, ok := session.Answers[wizard.FieldPassword]; ok {
		t.Error("plaintext password must not be stored in answers")
	}
	if err := f.bcryptUtils.ComparePassword(session.PasswordHash, "Secret1!"); err != nil {
		t.Error("stored hash does not match the spoken password")
	}

	for _, recorded := range f.attempts.attempts {
		if recorded.Transcript != "" && recorded.Step >= 5 {
			t.Errorf("attempt record for step %d retains transcript %q", recorded.Step, recorded.Transcript)
		}
	}

	// Confirmation is case sensitive.
	attempt, err = f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt confirmation: %v", err)
	}
	f.transcriber.transcript = "secret1!"
	result, err = f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "confirm.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt mismatch: %v", err)
	}
	if result.Accepted {
		t.Fatal("case-insensitive match must be rejected")
	}

	attempt, err = f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt confirmation retry: %v", err)
	}
	f.transcriber.transcript = "Secret1!"
	result, err = f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "confirm.webm"))
	if err != nil {
		t.Fatalf("SubmitAttempt confirmation: %v", err)
	}
	if !result.Accepted {
		t.Fatalf("matching confirmation rejected: %q", result.Error)
	}

	session = f.sessions.sessions[sessionID]
	if session.Status != entity.SessionReadyToSubmit {
		t.Errorf("status = %s, want %s", session.Status, entity.SessionReadyToSubmit)
	}
}

func TestSubmitManualAnswer(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	session := f.sessions.sessions[sessionID]
	session.Status = entity.SessionManualEntry
	f.sessions.sessions[sessionID] = session

	_, err := f.svc.SubmitManualAnswer(context.Background(), sessionID, registration.ManualAnswerRequest{Step: 2, Value: "pottery"})
	if !errors.Is(err, registration.ErrStaleAttempt) {
		t.Errorf("wrong step error = %v, want ErrStaleAttempt", err)
	}

	resp, err := f.svc.SubmitManualAnswer(context.Background(), sessionID, registration.ManualAnswerRequest{Step: 0, Value: "ravi kumar"})
	if err != nil {
		t.Fatalf("SubmitManualAnswer: %v", err)
	}
	if resp.CurrentStep != 1 {
		t.Errorf("current step = %d, want 1", resp.CurrentStep)
	}
	if resp.Status != string(entity.SessionInProgress) {
		t.Errorf("status = %s, want %s", resp.Status, entity.SessionInProgress)
	}
	if resp.Answers[wizard.FieldName] != "Ravi Kumar" {
		t.Errorf("stored name = %q", resp.Answers[wizard.FieldName])
	}
}

func TestSubmitManualAnswerRequiresManualEntry(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	_, err := f.svc.SubmitManualAnswer(context.Background(), sessionID, registration.ManualAnswerRequest{Step: 0, Value: "ravi"})
	if !errors.Is(err, registration.ErrSessionNotInProgress) {
		t.Errorf("manual answer while in progress error = %v, want ErrSessionNotInProgress", err)
	}
}

func TestConfirmAndSubmit(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	hash, err := f.bcryptUtils.HashPassword("Secret1!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	session := f.sessions.sessions[sessionID]
	session.Status = entity.SessionReadyToSubmit
	session.CurrentStep = wizard.ConfirmationStep
	session.PasswordHash = hash
	session.Answers = map[string]string{
		wizard.FieldName:     "Ravi Kumar",
		wizard.FieldLocation: "Mumbai, maharashtra",
		wizard.FieldCategory: "Pottery",
		wizard.FieldPhone:    "",
		wizard.FieldEmail:    "ravi@gmail.com",
	}
	f.sessions.sessions[sessionID] = session

	resp, err := f.svc.ConfirmAndSubmit(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("ConfirmAndSubmit: %v", err)
	}
	if resp.ArtisanID != "artisan-1" {
		t.Errorf("artisan id = %q", resp.ArtisanID)
	}
	if resp.ClosingMessage == "" {
		t.Error("expected a closing message")
	}

	input := f.artisans.lastInput
	if input.Name != "Ravi Kumar" || input.Email != "ravi@gmail.com" {
		t.Errorf("provision input = %+v", input)
	}
	if input.PasswordHash != hash {
		t.Error("provisioning must receive the stored hash")
	}
	if !input.VoiceRegistered {
		t.Error("provisioned artisan must be flagged voice registered")
	}

	session = f.sessions.sessions[sessionID]
	if session.Status != entity.SessionSubmitted {
		t.Errorf("status = %s, want %s", session.Status, entity.SessionSubmitted)
	}

	_, err = f.svc.ConfirmAndSubmit(context.Background(), sessionID)
	if !errors.Is(err, registration.ErrAlreadySubmitted) {
		t.Errorf("second submit error = %v, want ErrAlreadySubmitted", err)
	}
}

func TestConfirmAndSubmitNotReady(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	_, err := f.svc.ConfirmAndSubmit(context.Background(), sessionID)
	if !errors.Is(err, registration.ErrNotReadyToSubmit) {
		t.Errorf("submit while in progress error = %v, want ErrNotReadyToSubmit", err)
	}
}

func TestConfirmAndSubmitProvisioningFailure(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	session := f.sessions.sessions[sessionID]
	session.Status = entity.SessionReadyToSubmit
	session.PasswordHash = "hash"
	session.Answers = map[string]string{wizard.FieldName: "Ravi Kumar"}
	f.sessions.sessions[sessionID] = session

	f.artisans.err = errors.New("database unavailable")

	_, err := f.svc.ConfirmAndSubmit(context.Background(), sessionID)
	if !errors.Is(err, registration.ErrSubmissionFailed) {
		t.Fatalf("provisioning failure error = %v, want ErrSubmissionFailed", err)
	}

	session = f.sessions.sessions[sessionID]
	if session.Status != entity.SessionReadyToSubmit {
		t.Errorf("failed submission must leave status %s, got %s", entity.SessionReadyToSubmit, session.Status)
	}

	f.artisans.err = nil
	if _, err := f.svc.ConfirmAndSubmit(context.Background(), sessionID); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}

func TestRestartClearsSession(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	session := f.sessions.sessions[sessionID]
	session.Status = entity.SessionSubmitted
	session.CurrentStep = wizard.ConfirmationStep
	session.PasswordHash = "hash"
	session.RetryCount = 2
	session.AttemptID = "stale"
	session.Answers = map[string]string{wizard.FieldName: "Ravi Kumar"}
	f.sessions.sessions[sessionID] = session

	resp, err := f.svc.Restart(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if resp.CurrentStep != 0 {
		t.Errorf("current step = %d, want 0", resp.CurrentStep)
	}
	if resp.Status != string(entity.SessionInProgress) {
		t.Errorf("status = %s, want %s", resp.Status, entity.SessionInProgress)
	}
	if len(resp.Answers) != 0 {
		t.Errorf("answers = %v, want empty", resp.Answers)
	}
	if resp.AttemptID != "" {
		t.Error("restart must close any open attempt")
	}

	session = f.sessions.sessions[sessionID]
	if session.PasswordHash != "" {
		t.Error("restart must drop the password hash")
	}
}

func TestListAttempts(t *testing.T) {
	f := newFixture(t)
	sessionID := f.startSession(t)

	attempt, err := f.svc.OpenAttempt(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("OpenAttempt: %v", err)
	}
	f.transcriber.transcript = "mary jane smith"
	if _, err := f.svc.SubmitAttempt(context.Background(), sessionID, attempt.AttemptID, audioFile(t, "answer.webm")); err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	records, err := f.svc.ListAttempts(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].AttemptID != attempt.AttemptID || !records[0].Accepted {
		t.Errorf("record = %+v", records[0])
	}

	_, err = f.svc.ListAttempts(context.Background(), "missing")
	if !errors.Is(err, registration.ErrSessionNotFound) {
		t.Errorf("ListAttempts(missing) error = %v, want ErrSessionNotFound", err)
	}
}

func TestGetSessionUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetSession(context.Background(), "missing")
	if !errors.Is(err, registration.ErrSessionNotFound) {
		t.Errorf("GetSession(missing) error = %v, want ErrSessionNotFound", err)
	}
}

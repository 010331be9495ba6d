package artisanService

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"ArtisanCraft/internal/api/artisan"
	artisanRepository "ArtisanCraft/internal/api/artisan/repository"
	"ArtisanCraft/internal/entity"
	"ArtisanCraft/pkg/bcrypt"
	"ArtisanCraft/pkg/utils"

	"github.com/sirupsen/logrus"
)

type fakeUserStore struct {
	users  map[string]entity.User
	exists map[string]bool
}

func (f *fakeUserStore) CreateUser(_ context.Context, user entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	return f.exists[email], nil
}

type fakeArtisanStore struct {
	artisans map[string]entity.Artisan
}

func (f *fakeArtisanStore) CreateArtisan(_ context.Context, profile entity.Artisan) error {
	f.artisans[profile.ID] = profile
	return nil
}

func (f *fakeArtisanStore) GetArtisanByID(_ context.Context, id string) (entity.Artisan, error) {
	profile, ok := f.artisans[id]
	if !ok {
		return entity.Artisan{}, artisan.ErrArtisanNotFound
	}
	return profile, nil
}

func (f *fakeArtisanStore) GetArtisans(_ context.Context, _ string, _, _ int) ([]entity.Artisan, int, error) {
	var out []entity.Artisan
	for _, profile := range f.artisans {
		out = append(out, profile)
	}
	return out, len(out), nil
}

type fakeArtisanRepository struct {
	users    *fakeUserStore
	artisans *fakeArtisanStore
	commits  int
}

func (f *fakeArtisanRepository) NewClient(_ bool) (artisanRepository.Client, error) {
	return artisanRepository.Client{
		Users:    f.users,
		Artisans: f.artisans,
		Commit:   func() error { f.commits++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeGemini struct {
	bio string
	err error
}

func (f *fakeGemini) GenerateBio(_ context.Context, _, _, _ string) (string, error) {
	return f.bio, f.err
}

type fakeMailer struct {
	sentTo []string
}

func (f *fakeMailer) SendWelcomeMail(userEmail, _, _ string) error {
	f.sentTo = append(f.sentTo, userEmail)
	return nil
}

type artisanFixture struct {
	svc    ArtisanService
	repo   *fakeArtisanRepository
	mailer *fakeMailer
	gemini *fakeGemini
}

func newArtisanFixture(t *testing.T) *artisanFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeArtisanRepository{
		users:    &fakeUserStore{users: make(map[string]entity.User), exists: make(map[string]bool)},
		artisans: &fakeArtisanStore{artisans: make(map[string]entity.Artisan)},
	}
	mailer := &fakeMailer{}
	gemini := &fakeGemini{err: errors.New("unavailable")}

	svc := New(logger, repo, bcrypt.NewWithCost(4), utils.New(), gemini, mailer)

	return &artisanFixture{svc: svc, repo: repo, mailer: mailer, gemini: gemini}
}

func TestProvisionPrehashed(t *testing.T) {
	f := newArtisanFixture(t)

	input := artisan.ProvisionInput{
		Name:            "Ravi Kumar",
		Location:        "Mumbai, Maharashtra",
		Category:        "Pottery",
		Email:           "ravi@gmail.com",
		PasswordHash:    "$2a$04$precomputedhash",
		Language:        "hi-IN",
		VoiceRegistered: true,
	}

	resp, err := f.svc.ProvisionPrehashed(context.Background(), input)
	if err != nil {
		t.Fatalf("ProvisionPrehashed: %v", err)
	}
	if resp.ArtisanID == "" || resp.UserID == "" {
		t.Fatal("expected generated identifiers")
	}
	if resp.Email != "ravi@gmail.com" {
		t.Errorf("email = %q, want the supplied address", resp.Email)
	}
	if f.repo.commits != 1 {
		t.Errorf("commits = %d, want 1", f.repo.commits)
	}

	user := f.repo.users.users[resp.UserID]
	if user.Password != input.PasswordHash {
		t.Error("user must store the supplied hash untouched")
	}
	if user.Role != entity.RoleArtisan {
		t.Errorf("role = %s, want %s", user.Role, entity.RoleArtisan)
	}
	if !user.VoiceRegistered {
		t.Error("user should be flagged voice registered")
	}

	profile := f.repo.artisans.artisans[resp.ArtisanID]
	if profile.RegionCity != "Mumbai" || profile.RegionState != "Maharashtra" {
		t.Errorf("region = %q/%q", profile.RegionCity, profile.RegionState)
	}
	if len(profile.Specialties) != 1 || profile.Specialties[0] != "pottery" {
		t.Errorf("specialties = %v", profile.Specialties)
	}
	if profile.BusinessName != "Ravi Kumar's Pottery" {
		t.Errorf("business name = %q", profile.BusinessName)
	}
	if profile.RegistrationLanguage != "hi-IN" {
		t.Errorf("registration language = %q", profile.RegistrationLanguage)
	}

	if len(f.mailer.sentTo) != 1 || f.mailer.sentTo[0] != "ravi@gmail.com" {
		t.Errorf("welcome mail recipients = %v", f.mailer.sentTo)
	}
}

func TestProvisionSynthesizesMissingCredentials(t *testing.T) {
	f := newArtisanFixture(t)

	resp, err := f.svc.ProvisionPrehashed(context.Background(), artisan.ProvisionInput{
		Name:            "Ravi Kumar",
		Location:        "Mumbai",
		Category:        "Pottery",
		VoiceRegistered: true,
	})
	if err != nil {
		t.Fatalf("ProvisionPrehashed: %v", err)
	}

	if !strings.HasPrefix(resp.Email, "ravikumar_") {
		t.Errorf("synthetic email = %q, want ravikumar_ prefix", resp.Email)
	}
	if !strings.HasSuffix(resp.Email, "@voiceassistant.temp") {
		t.Errorf("synthetic email = %q, want voiceassistant.temp domain", resp.Email)
	}

	user := f.repo.users.users[resp.UserID]
	if user.Password == "" {
		t.Error("expected a generated password hash")
	}

	if len(f.mailer.sentTo) != 0 {
		t.Errorf("welcome mail must be skipped for synthetic addresses, sent to %v", f.mailer.sentTo)
	}
}

func TestProvisionRejectsDuplicateEmail(t *testing.T) {
	f := newArtisanFixture(t)
	f.repo.users.exists["ravi@gmail.com"] = true

	_, err := f.svc.ProvisionPrehashed(context.Background(), artisan.ProvisionInput{
		Name:  "Ravi Kumar",
		Email: "ravi@gmail.com",
	})
	if !errors.Is(err, artisan.ErrEmailAlreadyInUse) {
		t.Errorf("duplicate email error = %v, want ErrEmailAlreadyInUse", err)
	}
}

func TestProvisionRequiresName(t *testing.T) {
	f := newArtisanFixture(t)

	_, err := f.svc.ProvisionPrehashed(context.Background(), artisan.ProvisionInput{})
	if !errors.Is(err, artisan.ErrMissingName) {
		t.Errorf("missing name error = %v, want ErrMissingName", err)
	}
}

func TestProvisionUsesGeminiBioWhenAvailable(t *testing.T) {
	f := newArtisanFixture(t)
	f.gemini.err = nil
	f.gemini.bio = "Award-winning potter from Mumbai."

	resp, err := f.svc.ProvisionPrehashed(context.Background(), artisan.ProvisionInput{
		Name:     "Ravi Kumar",
		Location: "Mumbai",
		Category: "Pottery",
	})
	if err != nil {
		t.Fatalf("ProvisionPrehashed: %v", err)
	}

	profile := f.repo.artisans.artisans[resp.ArtisanID]
	if profile.Description != f.gemini.bio {
		t.Errorf("description = %q, want the generated bio", profile.Description)
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location string
		city     string
		state    string
	}{
		{"Mumbai, Maharashtra", "Mumbai", "Maharashtra"},
		{"Mumbai", "Mumbai", "Mumbai"},
		{"", "", ""},
	}

	for _, tt := range tests {
		city, state := splitLocation(tt.location)
		if city != tt.city || state != tt.state {
			t.Errorf("splitLocation(%q) = %q, %q, want %q, %q", tt.location, city, state, tt.city, tt.state)
		}
	}
}

func TestMapSpecialty(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Pottery", "pottery"},
		{"  Jewelry ", "jewelry"},
		{"Handmade Candles", "textiles"},
		{"", "textiles"},
	}

	for _, tt := range tests {
		if got := mapSpecialty(tt.category); got != tt.want {
			t.Errorf("mapSpecialty(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

package triage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"wecare/internal/imaging"
	"wecare/internal/language"
	"wecare/internal/ollama"
)

// ErrNoInput means the request carried neither symptom text nor an image.
var ErrNoInput = errors.New("either symptoms or an image must be provided")

// primaryCallTimeout bounds the main generation call. Its failures abort
// the whole request, unlike the secondary calls in postprocess.go.
const primaryCallTimeout = 120 * time.Second

const maxReferrals = 3

// HistoryProvider supplies the patient's stored medical history. Owned by
// the user package; declared here on the consumer side.
type HistoryProvider interface {
	ListConditions(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error)
}

// ReferralDirectory resolves doctors for a specialization. Owned by the
// directory package.
type ReferralDirectory interface {
	FindDoctors(ctx context.Context, specialization string, limit int) ([]Referral, error)
}

// AlertNotifier receives critical cases after they are persisted. Failures
// are logged, never propagated.
type AlertNotifier interface {
	NotifyCriticalCase(ctx context.Context, c Consultation) error
}

type Service interface {
	Consult(ctx context.Context, userID uuid.UUID, req ConsultRequest) (*ConsultResult, error)
	GetConsultation(ctx context.Context, userID, id uuid.UUID) (*Consultation, error)
	ListConsultations(ctx context.Context, userID uuid.UUID, limit int) ([]Consultation, error)
}

type service struct {
	repo       Repository
	gen        Generator
	normalizer *imaging.Normalizer
	history    HistoryProvider
	directory  ReferralDirectory
	notifier   AlertNotifier

	uploadDir    string
	fallbackLang language.Language
}

func NewService(repo Repository, gen Generator, normalizer *imaging.Normalizer,
	history HistoryProvider, directory ReferralDirectory, notifier AlertNotifier,
	uploadDir string, fallbackLang language.Language) Service {
	return &service{
		repo:         repo,
		gen:          gen,
		normalizer:   normalizer,
		history:      history,
		directory:    directory,
		notifier:     notifier,
		uploadDir:    uploadDir,
		fallbackLang: fallbackLang,
	}
}

// Consult runs the full triage pipeline for one request: validate, build
// context, call the model, post-process, persist, resolve referrals. Only
// input validation, image normalization and the primary model call can fail
// the request; every step after the record is persisted is fail-soft.
func (s *service) Consult(ctx context.Context, userID uuid.UUID, req ConsultRequest) (*ConsultResult, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" && len(req.Image) == 0 {
		return nil, ErrNoInput
	}

	var imageBytes []byte
	var imagePath string
	if len(req.Image) > 0 {
		normalized, err := s.normalizer.Normalize(req.Image)
		if err != nil {
			return nil, err
		}
		imageBytes = normalized
		imagePath, err = s.storeImage(normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
	}

	lang := language.Detect(symptoms)
	if symptoms == "" {
		lang = s.fallbackLang
	}

	var history []HistoryEntry
	if req.UseHistory {
		entries, err := s.history.ListConditions(ctx, userID)
		if err != nil {
			log.Printf("history lookup failed for user %s: %v", userID, err)
		} else {
			history = entries
		}
	}

	previous, err := s.repo.ListByUser(ctx, userID, conversationWindow)
	if err != nil {
		log.Printf("prior consultation lookup failed for user %s: %v", userID, err)
	}

	prompt := BuildPrompt(lang, history, previous, symptoms, len(imageBytes) > 0)

	genCtx, cancel := context.WithTimeout(ctx, primaryCallTimeout)
	defer cancel()
	genReq := ollama.GenerateRequest{Prompt: prompt}
	if len(imageBytes) > 0 {
		genReq.Images = [][]byte{imageBytes}
	}
	response, err := s.gen.Generate(genCtx, genReq)
	if err != nil {
		return nil, err
	}

	response, _ = EnforceLanguage(ctx, s.gen, lang, response)
	priority := ClassifyPriority(symptoms, response)
	specialization := ExtractSpecialization(response)
	firstAid := ExtractFirstAid(response)
	summary, _ := Summarize(ctx, s.gen, lang, response)

	c := Consultation{
		ID:             uuid.New(),
		UserID:         userID,
		Symptoms:       symptoms,
		ImagePath:      imagePath,
		Response:       summary,
		Priority:       priority,
		FirstAid:       firstAid,
		Specialization: specialization,
		Status:         StatusPending,
		UseHistory:     req.UseHistory,
		IsSynced:       true,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to save consultation: %w", err)
	}

	referrals := s.resolveReferrals(ctx, specialization)

	if priority == PriorityCritical && s.notifier != nil {
		if err := s.notifier.NotifyCriticalCase(ctx, c); err != nil {
			log.Printf("critical case alert failed for %s: %v", c.ID, err)
		}
	}

	return &ConsultResult{
		ID:             c.ID,
		Response:       response,
		Priority:       priority,
		FirstAid:       firstAid,
		Specialization: specialization,
		Referrals:      referrals,
	}, nil
}

// resolveReferrals never fails the request: no match for the extracted
// specialization falls back to the default category, and an empty directory
// yields an empty list.
func (s *service) resolveReferrals(ctx context.Context, specialization string) []Referral {
	if specialization == "" {
		specialization = DefaultSpecialization
	}
	referrals, err := s.directory.FindDoctors(ctx, specialization, maxReferrals)
	if err != nil {
		log.Printf("referral lookup failed for %q: %v", specialization, err)
		return []Referral{}
	}
	if len(referrals) == 0 && specialization != DefaultSpecialization {
		referrals, err = s.directory.FindDoctors(ctx, DefaultSpecialization, maxReferrals)
		if err != nil {
			log.Printf("fallback referral lookup failed: %v", err)
			return []Referral{}
		}
	}
	if referrals == nil {
		referrals = []Referral{}
	}
	return referrals
}

func (s *service) storeImage(data []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.uploadDir, uuid.New().String()+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *service) GetConsultation(ctx context.Context, userID, id uuid.UUID) (*Consultation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("consultation not found")
	}
	return c, nil
}

func (s *service) ListConsultations(ctx context.Context, userID uuid.UUID, limit int) ([]Consultation, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

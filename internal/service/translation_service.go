//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"dutchghostwriter/backend/internal/hashutil"
	"dutchghostwriter/backend/internal/model"
	"dutchghostwriter/backend/internal/repository"
	"dutchghostwriter/backend/internal/service/ai"
	"dutchghostwriter/backend/internal/textutil"
	"dutchghostwriter/backend/pkg/logger"
)

// SentenceField names an editable text field of a sentence.
type SentenceField string

const (
	FieldEnglish SentenceField = "english"
	FieldDutch   SentenceField = "dutch"
)

const reviewContextSize = 3

// TranslationService owns the list of all translations, the open translation
// and the AI review session. Every mutation goes through the store first;
// the in-memory state is updated from the stored result.
type TranslationService interface {
	Initialize(ctx context.Context) error

	CreateTranslation(ctx context.Context, sourceText string, sentences []string) (model.Translation, error)
	LoadTranslation(ctx context.Context, id int64) (model.Translation, error)
	UpdateCurrentTranslation(ctx context.Context, patch model.TranslationPatch) (model.Translation, error)
	UpdateSentence(ctx context.Context, sentenceID int, field SentenceField, value string) (model.Translation, error)
	AddSentence(ctx context.Context, afterID *int) (model.Sentence, error)
	DeleteSentence(ctx context.Context, sentenceID int) (*model.Sentence, error)
	RenameTranslation(ctx context.Context, id int64, title string) (model.Translation, error)
	RemoveTranslation(ctx context.Context, id int64) error
	ClearCurrentTranslation()

	AllTranslations() []model.Translation
	CurrentTranslation() (model.Translation, bool)

	OpenReview(sentenceID int) (ReviewState, error)
	RequestReview(ctx context.Context) (ReviewState, error)
	CloseReview() ReviewState
	ReviewState() ReviewState

	Subscribe() (<-chan Event, func())
}

// ReviewState is the observable AI review session.
type ReviewState struct {
	Open          bool
	TranslationID int64
	SentenceID    int
	Loading       bool
	Error         string
	Review        *model.ReviewCache
}

// reviewSession is the mutable session behind ReviewState. ticket identifies
// the request whose completion may still touch loading and error.
type reviewSession struct {
	open          bool
	translationID int64
	sentenceID    int
	loading       bool
	err           string
	ticket        string
}

// reviewTarget is captured when a review is requested. The response is
// written to this sentence only, and only if its text is unchanged.
type reviewTarget struct {
	translationID int64
	sentenceID    int
	english       string
	dutch         string
	ticket        string
	apiKey        string
}

type translationService struct {
	repo     repository.TranslationRepository
	settings SettingsService
	ai       AIService
	now      func() time.Time

	mu          sync.Mutex
	initialized bool
	all         []model.Translation
	current     *model.Translation
	review      reviewSession

	flight singleflight.Group
	events *broadcaster
}

func NewTranslationService(repo repository.TranslationRepository, settings SettingsService, aiService AIService) TranslationService {
	return &translationService{
		repo:     repo,
		settings: settings,
		ai:       aiService,
		now:      time.Now,
		all:      []model.Translation{},
		events:   newBroadcaster(),
	}
}

// Initialize loads every translation once. Later calls are no-ops.
func (s *translationService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("load translations", "module", "service", "action", "initialize", "resource", "translation", "result", "failed", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	s.all = list
	s.initialized = true
	logger.Info("translations loaded", "module", "service", "action", "initialize", "resource", "translation", "result", "ok", "count", len(list))
	s.emitTranslationsLocked()
	return nil
}

func (s *translationService) CreateTranslation(ctx context.Context, sourceText string, sentences []string) (model.Translation, error) {
	if len(sentences) == 0 {
		sentences = textutil.Segment(sourceText)
	}
	if len(sentences) == 0 {
		return model.Translation{}, fmt.Errorf("%w: text is empty", ErrInvalid)
	}
	if limit := s.settings.Current().MaxTextLength; textutil.RuneLen(sourceText) > limit {
		return model.Translation{}, fmt.Errorf("%w: text is longer than %d characters", ErrInvalid, limit)
	}

	titleSource := sentences[0]
	if strings.TrimSpace(titleSource) == "" {
		titleSource = sourceText
	}
	translation := model.Translation{
		Title:        textutil.DeriveTitle(titleSource),
		OriginalText: sourceText,
		Sentences:    make([]model.Sentence, len(sentences)),
	}
	for i, english := range sentences {
		translation.Sentences[i] = model.Sentence{ID: i + 1, English: english}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.repo.Create(ctx, translation)
	if err != nil {
		return model.Translation{}, fmt.Errorf("create translation: %w", err)
	}

	s.all = append([]model.Translation{created.Clone()}, s.all...)
	s.setCurrentLocked(created)
	logger.Info("translation created", "module", "service", "action", "create", "resource", "translation", "result", "ok", "translation_id", created.ID, "sentences", len(created.Sentences))
	s.emitTranslationsLocked()
	return created.Clone(), nil
}

// LoadTranslation opens id. A missing id leaves no translation open.
func (s *translationService) LoadTranslation(ctx context.Context, id int64) (model.Translation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	translation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Translation{}, fmt.Errorf("load translation: %w", err)
	}
	if translation == nil {
		s.clearCurrentLocked()
		if s.purgeLocked(id) {
			s.emitTranslationsLocked()
		}
		logger.Warn("translation not found", "module", "service", "action", "load", "resource", "translation", "result", "not_found", "translation_id", id)
		return model.Translation{}, ErrNotFound
	}

	s.setCurrentLocked(translation)
	return translation.Clone(), nil
}

func (s *translationService) UpdateCurrentTranslation(ctx context.Context, patch model.TranslationPatch) (model.Translation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.updateCurrentLocked(ctx, patch)
	if err != nil {
		return model.Translation{}, err
	}
	return updated.Clone(), nil
}

// UpdateSentence sets one field and always drops the sentence's review cache,
// even when value equals the current text.
func (s *translationService) UpdateSentence(ctx context.Context, sentenceID int, field SentenceField, value string) (model.Translation, error) {
	if field != FieldEnglish && field != FieldDutch {
		return model.Translation{}, fmt.Errorf("%w: unknown field %q", ErrInvalid, field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.Translation{}, ErrNoCurrentTranslation
	}
	idx := s.current.SentenceIndex(sentenceID)
	if idx < 0 {
		return model.Translation{}, fmt.Errorf("%w: sentence %d", ErrNotFound, sentenceID)
	}

	sentences := model.CloneSentences(s.current.Sentences)
	if field == FieldEnglish {
		sentences[idx].English = value
	} else {
		sentences[idx].Dutch = value
	}
	sentences[idx].AIReview = nil

	updated, err := s.updateCurrentLocked(ctx, model.TranslationPatch{Sentences: &sentences})
	if err != nil {
		return model.Translation{}, err
	}
	return updated.Clone(), nil
}

// AddSentence inserts a blank sentence after afterID, or at the end when
// afterID is nil or unknown. The new id is the current maximum plus one.
func (s *translationService) AddSentence(ctx context.Context, afterID *int) (model.Sentence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.Sentence{}, ErrNoCurrentTranslation
	}

	maxID := 0
	for _, sentence := range s.current.Sentences {
		if sentence.ID > maxID {
			maxID = sentence.ID
		}
	}
	added := model.Sentence{ID: maxID + 1}

	sentences := model.CloneSentences(s.current.Sentences)
	pos := len(sentences)
	if afterID != nil {
		if idx := s.current.SentenceIndex(*afterID); idx >= 0 {
			pos = idx + 1
		}
	}
	sentences = append(sentences, model.Sentence{})
	copy(sentences[pos+1:], sentences[pos:])
	sentences[pos] = added

	if _, err := s.updateCurrentLocked(ctx, model.TranslationPatch{Sentences: &sentences}); err != nil {
		return model.Sentence{}, err
	}
	return added, nil
}

// DeleteSentence returns the removed sentence, or nil without persisting
// anything when no sentence has that id.
func (s *translationService) DeleteSentence(ctx context.Context, sentenceID int) (*model.Sentence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoCurrentTranslation
	}
	idx := s.current.SentenceIndex(sentenceID)
	if idx < 0 {
		return nil, nil
	}

	removed := model.CloneSentences(s.current.Sentences[idx : idx+1])[0]
	sentences := model.CloneSentences(s.current.Sentences)
	sentences = append(sentences[:idx], sentences[idx+1:]...)

	if _, err := s.updateCurrentLocked(ctx, model.TranslationPatch{Sentences: &sentences}); err != nil {
		return nil, err
	}
	if s.review.open && s.review.translationID == s.current.ID && s.review.sentenceID == sentenceID {
		s.closeReviewLocked()
	}
	return &removed, nil
}

// RenameTranslation updates the title in place without moving the entry.
func (s *translationService) RenameTranslation(ctx context.Context, id int64, title string) (model.Translation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Translation{}, fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.Update(ctx, id, model.TranslationPatch{Title: &title})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Translation{}, ErrNotFound
	}
	if err != nil {
		return model.Translation{}, fmt.Errorf("rename translation: %w", err)
	}

	for i := range s.all {
		if s.all[i].ID == id {
			s.all[i] = updated.Clone()
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		current := updated.Clone()
		s.current = &current
		s.emitCurrentLocked()
	}
	s.emitTranslationsLocked()
	return updated.Clone(), nil
}

// RemoveTranslation deletes id. A missing id reports ErrNotFound but is still
// dropped from memory.
func (s *translationService) RemoveTranslation(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("remove translation: %w", err)
	}

	purged := s.purgeLocked(id)
	if s.current != nil && s.current.ID == id {
		s.clearCurrentLocked()
	}
	if purged {
		s.emitTranslationsLocked()
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	logger.Info("translation removed", "module", "service", "action", "delete", "resource", "translation", "result", "ok", "translation_id", id)
	return nil
}

func (s *translationService) ClearCurrentTranslation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCurrentLocked()
}

func (s *translationService) AllTranslations() []model.Translation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allLocked()
}

func (s *translationService) CurrentTranslation() (model.Translation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.Translation{}, false
	}
	return s.current.Clone(), true
}

// OpenReview targets a sentence of the open translation. It never fetches.
func (s *translationService) OpenReview(sentenceID int) (ReviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ReviewState{}, ErrNoCurrentTranslation
	}
	if s.current.SentenceIndex(sentenceID) < 0 {
		return ReviewState{}, fmt.Errorf("%w: sentence %d", ErrNotFound, sentenceID)
	}

	s.review = reviewSession{
		open:          true,
		translationID: s.current.ID,
		sentenceID:    sentenceID,
	}
	s.emitReviewLocked()
	return s.reviewStateLocked(), nil
}

// RequestReview fetches a critique for the open sentence unless one is cached.
// The network call runs without the lock and is not cancelled by ctx.
func (s *translationService) RequestReview(ctx context.Context) (ReviewState, error) {
	s.mu.Lock()
	target, req, err := s.beginReviewLocked()
	if err != nil || target == nil {
		state := s.reviewStateLocked()
		s.mu.Unlock()
		return state, err
	}
	s.mu.Unlock()

	flightKey := fmt.Sprintf("%d:%d:%s", target.translationID, target.sentenceID, hashutil.Fingerprint(target.english, target.dutch))
	value, callErr, _ := s.flight.Do(flightKey, func() (interface{}, error) {
		return s.ai.ReviewSentence(context.WithoutCancel(ctx), target.apiKey, req)
	})
	result, _ := value.(ai.Result)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishReviewLocked(context.WithoutCancel(ctx), *target, result, callErr)
}

// beginReviewLocked returns a nil target when no fetch is needed.
func (s *translationService) beginReviewLocked() (*reviewTarget, ai.ReviewRequest, error) {
	if !s.review.open {
		return nil, ai.ReviewRequest{}, ErrReviewNotOpen
	}
	if s.current == nil || s.current.ID != s.review.translationID {
		return nil, ai.ReviewRequest{}, ErrNoCurrentTranslation
	}
	idx := s.current.SentenceIndex(s.review.sentenceID)
	if idx < 0 {
		return nil, ai.ReviewRequest{}, fmt.Errorf("%w: sentence %d", ErrNotFound, s.review.sentenceID)
	}

	sentence := s.current.Sentences[idx]
	if sentence.AIReview != nil && sentence.AIReview.Content != "" {
		return nil, ai.ReviewRequest{}, nil
	}

	apiKey := s.settings.APIKey()
	if apiKey == "" {
		s.review.loading = false
		s.review.ticket = ""
		s.review.err = credentialMissingMessage
		s.emitReviewLocked()
		return nil, ai.ReviewRequest{}, ErrCredentialMissing
	}

	target := &reviewTarget{
		translationID: s.current.ID,
		sentenceID:    sentence.ID,
		english:       sentence.English,
		dutch:         sentence.Dutch,
		ticket:        uuid.NewString(),
		apiKey:        apiKey,
	}
	s.review.ticket = target.ticket
	s.review.loading = true
	s.review.err = ""
	s.emitReviewLocked()

	before, after := reviewContext(s.current.Sentences, idx)
	return target, ai.ReviewRequest{
		English:       sentence.English,
		Dutch:         sentence.Dutch,
		ContextBefore: before,
		ContextAfter:  after,
	}, nil
}

func (s *translationService) finishReviewLocked(ctx context.Context, target reviewTarget, result ai.Result, callErr error) (ReviewState, error) {
	active := s.review.ticket == target.ticket
	var message string
	var outErr error

	switch {
	case callErr != nil:
		message = callErr.Error()
		outErr = callErr
		logger.Warn("review failed", "module", "service", "action", "review", "resource", "sentence", "result", "failed", "translation_id", target.translationID, "sentence_id", target.sentenceID, "error", callErr)
	case !result.Success:
		message = result.Error
		logger.Warn("review rejected", "module", "service", "action", "review", "resource", "sentence", "result", "failed", "translation_id", target.translationID, "sentence_id", target.sentenceID, "error", result.Error)
	default:
		if err := s.storeReviewLocked(ctx, target, result.Data); err != nil {
			message = "The review could not be saved."
			outErr = err
			logger.Error("save review", "module", "service", "action", "review", "resource", "sentence", "result", "failed", "translation_id", target.translationID, "sentence_id", target.sentenceID, "error", err)
		}
	}

	if active {
		s.review.loading = false
		s.review.ticket = ""
		s.review.err = message
		s.emitReviewLocked()
	}
	return s.reviewStateLocked(), outErr
}

// storeReviewLocked writes the cache into the target sentence if it still
// holds the text the review was generated for. Otherwise the result is dropped.
func (s *translationService) storeReviewLocked(ctx context.Context, target reviewTarget, content string) error {
	cache := &model.ReviewCache{Content: content, GeneratedAt: s.now().UTC()}

	if s.current != nil && s.current.ID == target.translationID {
		sentences, ok := withReview(s.current.Sentences, target, cache)
		if !ok {
			return nil
		}
		_, err := s.updateCurrentLocked(ctx, model.TranslationPatch{Sentences: &sentences})
		return err
	}

	stored, err := s.repo.GetByID(ctx, target.translationID)
	if err != nil || stored == nil {
		return err
	}
	sentences, ok := withReview(stored.Sentences, target, cache)
	if !ok {
		return nil
	}
	updated, err := s.repo.Update(ctx, target.translationID, model.TranslationPatch{Sentences: &sentences})
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	s.spliceFrontLocked(*updated)
	s.emitTranslationsLocked()
	return nil
}

func withReview(sentences []model.Sentence, target reviewTarget, cache *model.ReviewCache) ([]model.Sentence, bool) {
	for i, sentence := range sentences {
		if sentence.ID != target.sentenceID {
			continue
		}
		if sentence.English != target.english || sentence.Dutch != target.dutch || sentence.AIReview != nil {
			return nil, false
		}
		out := model.CloneSentences(sentences)
		review := *cache
		out[i].AIReview = &review
		return out, true
	}
	return nil, false
}

// reviewContext collects up to three non-blank English sentences on each side of idx.
func reviewContext(sentences []model.Sentence, idx int) (before, after []string) {
	before = []string{}
	for i := idx - 1; i >= 0 && len(before) < reviewContextSize; i-- {
		if text := strings.TrimSpace(sentences[i].English); text != "" {
			before = append([]string{text}, before...)
		}
	}
	after = []string{}
	for i := idx + 1; i < len(sentences) && len(after) < reviewContextSize; i++ {
		if text := strings.TrimSpace(sentences[i].English); text != "" {
			after = append(after, text)
		}
	}
	return before, after
}

// CloseReview abandons the session. An in-flight request still completes and
// may fill its sentence's cache, but no longer touches the session.
func (s *translationService) CloseReview() ReviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeReviewLocked()
	return s.reviewStateLocked()
}

func (s *translationService) ReviewState() ReviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewStateLocked()
}

func (s *translationService) Subscribe() (<-chan Event, func()) {
	return s.events.subscribe()
}

func (s *translationService) updateCurrentLocked(ctx context.Context, patch model.TranslationPatch) (*model.Translation, error) {
	if s.current == nil {
		logger.Warn("update without open translation", "module", "service", "action", "update", "resource", "translation", "result", "skipped")
		return nil, ErrNoCurrentTranslation
	}
	if patch.Sentences != nil {
		sentences := model.CloneSentences(*patch.Sentences)
		patch.Sentences = &sentences
	}

	updated, err := s.repo.Update(ctx, s.current.ID, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update translation: %w", err)
	}

	current := updated.Clone()
	s.current = &current
	s.spliceFrontLocked(*updated)
	s.emitCurrentLocked()
	s.emitTranslationsLocked()
	if s.review.open && s.review.translationID == current.ID {
		s.emitReviewLocked()
	}
	return updated, nil
}

// spliceFrontLocked moves the entry for t to the front, replacing the old copy.
func (s *translationService) spliceFrontLocked(t model.Translation) {
	s.purgeLocked(t.ID)
	s.all = append([]model.Translation{t.Clone()}, s.all...)
}

func (s *translationService) purgeLocked(id int64) bool {
	for i := range s.all {
		if s.all[i].ID == id {
			s.all = append(s.all[:i], s.all[i+1:]...)
			return true
		}
	}
	return false
}

func (s *translationService) setCurrentLocked(t *model.Translation) {
	if s.current == nil || s.current.ID != t.ID {
		s.closeReviewLocked()
	}
	current := t.Clone()
	s.current = &current
	s.emitCurrentLocked()
}

func (s *translationService) clearCurrentLocked() {
	if s.current == nil {
		return
	}
	s.current = nil
	s.closeReviewLocked()
	s.emitCurrentLocked()
}

func (s *translationService) closeReviewLocked() {
	if s.review == (reviewSession{}) {
		return
	}
	s.review = reviewSession{}
	s.emitReviewLocked()
}

func (s *translationService) allLocked() []model.Translation {
	out := make([]model.Translation, len(s.all))
	for i, t := range s.all {
		out[i] = t.Clone()
	}
	return out
}

func (s *translationService) reviewStateLocked() ReviewState {
	state := ReviewState{
		Open:          s.review.open,
		TranslationID: s.review.translationID,
		SentenceID:    s.review.sentenceID,
		Loading:       s.review.loading,
		Error:         s.review.err,
	}
	if s.review.open && s.current != nil && s.current.ID == s.review.translationID {
		if idx := s.current.SentenceIndex(s.review.sentenceID); idx >= 0 && s.current.Sentences[idx].AIReview != nil {
			review := *s.current.Sentences[idx].AIReview
			state.Review = &review
		}
	}
	return state
}

func (s *translationService) emitTranslationsLocked() {
	s.events.publish(Event{Type: EventTranslations, Translations: s.allLocked()})
}

func (s *translationService) emitCurrentLocked() {
	event := Event{Type: EventCurrent}
	if s.current != nil {
		current := s.current.Clone()
		event.Current = &current
	}
	s.events.publish(event)
}

func (s *translationService) emitReviewLocked() {
	state := s.reviewStateLocked()
	s.events.publish(Event{Type: EventReview, Review: &state})
}

// Summarize reduces a translation to its list entry.
func Summarize(t model.Translation) TranslationSummary {
	summary := TranslationSummary{
		ID:            t.ID,
		Title:         t.Title,
		SentenceCount: len(t.Sentences),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	for _, sentence := range t.Sentences {
		if strings.TrimSpace(sentence.Dutch) != "" {
			summary.TranslatedCount++
		}
	}
	return summary
}

type TranslationSummary struct {
	ID              int64
	Title           string
	SentenceCount   int
	TranslatedCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

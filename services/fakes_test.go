package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
)

// memoryCache is a Cache that round-trips values through JSON like Redis does
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// fakeProfileStore keeps profiles in memory and applies the same filter
// semantics as the SQL query
type fakeProfileStore struct {
	profiles    map[uuid.UUID]*models.Profile
	searchCalls int
	upserts     int
	err         error
}

func newFakeProfileStore(profiles ...*models.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[uuid.UUID]*models.Profile)}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *fakeProfileStore) Search(_ context.Context, f models.WorkerFilter) ([]models.Profile, error) {
	s.searchCalls++
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Profile
	for _, p := range s.profiles {
		if !p.IsAvailable {
			continue
		}
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if f.Location != nil && !p.ServesLocation(*f.Location) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeProfileStore) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *fakeProfileStore) Upsert(_ context.Context, profile *models.Profile) error {
	if s.err != nil {
		return s.err
	}
	s.upserts++
	clone := *profile
	if existing, ok := s.profiles[profile.ID]; ok {
		clone.CreatedAt = existing.CreatedAt
	} else if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	s.profiles[profile.ID] = &clone
	return nil
}

func (s *fakeProfileStore) SetPhoto(_ context.Context, id uuid.UUID, url string) error {
	p, ok := s.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ProfilePhotoURL = &url
	return nil
}

type fakeReviewStore struct {
	reviews   []models.Review
	creates   int
	listCalls int
}

func (s *fakeReviewStore) ListByWorker(_ context.Context, workerID uuid.UUID) ([]models.Review, error) {
	s.listCalls++
	out := []models.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].WorkerID == workerID {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}

func (s *fakeReviewStore) Create(_ context.Context, review *models.Review) error {
	s.creates++
	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *fakeReviewStore) RatingsByWorker(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]int, error) {
	out := make(map[uuid.UUID][]int)
	for _, id := range ids {
		for _, r := range s.reviews {
			if r.WorkerID == id {
				out[id] = append(out[id], r.Rating)
			}
		}
	}
	return out, nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishReviewsChanged(workerID uuid.UUID, summary models.RatingSummary) {
	m.Called(workerID, summary)
}

// fakeUserStore implements UserStore and TokenStore
type fakeUserStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*models.User
	tokens  map[string]*models.RefreshToken
	calls   int
	creates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[uuid.UUID]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, u := range s.users {
		if u.Email == models.NormalizeEmail(email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.creates++
	user.ID = uuid.New()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) SaveMetadata(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.users[user.ID].Metadata = user.Metadata
	return nil
}

func (s *fakeUserStore) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *token
	s.tokens[token.Token] = &clone
	return nil
}

func (s *fakeUserStore) FindRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *t
	return &clone, nil
}

func (s *fakeUserStore) TouchRefreshToken(context.Context, *models.RefreshToken) error {
	return nil
}

func (s *fakeUserStore) RevokeRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.IsRevoked = true
	return nil
}

func (s *fakeUserStore) DeleteExpiredRefreshTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, t := range s.tokens {
		if t.IsRevoked || t.IsExpired(now) {
			delete(s.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeContactStore struct {
	queries   []models.Query
	feedbacks []models.Feedback
}

func (s *fakeContactStore) CreateQuery(_ context.Context, q *models.Query) error {
	s.queries = append(s.queries, *q)
	return nil
}

func (s *fakeContactStore) CreateFeedback(_ context.Context, f *models.Feedback) error {
	s.feedbacks = append(s.feedbacks, *f)
	return nil
}

type fakeBlogStore struct {
	blogs []*models.Blog
	saves int
}

func (s *fakeBlogStore) List(context.Context) ([]models.Blog, error) {
	out := make([]models.Blog, len(s.blogs))
	for i, b := range s.blogs {
		out[len(s.blogs)-1-i] = *b
	}
	return out, nil
}

func (s *fakeBlogStore) FindByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
	for _, b := range s.blogs {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBlogStore) Create(_ context.Context, blog *models.Blog) error {
	s.saves++
	blog.ID = uuid.New()
	clone := *blog
	s.blogs = append(s.blogs, &clone)
	return nil
}

func (s *fakeBlogStore) Save(_ context.Context, blog *models.Blog) error {
	s.saves++
	for i, b := range s.blogs {
		if b.ID == blog.ID {
			clone := *blog
			s.blogs[i] = &clone
		}
	}
	return nil
}

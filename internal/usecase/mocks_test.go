package usecase

import (
	"context"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFilmRepository mocks repository.FilmRepository
type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) Create(ctx context.Context, film *entity.Film) error {
	return m.Called(ctx, film).Error(0)
}

func (m *MockFilmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Film), args.Error(1)
}

func (m *MockFilmRepository) Update(ctx context.Context, film *entity.Film) (bool, error) {
	args := m.Called(ctx, film)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) FindAll(ctx context.Context, q repository.FilmQuery) ([]*entity.Film, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Film), args.Error(1)
}

func (m *MockFilmRepository) CountAll(ctx context.Context, filter repository.FilmFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFilmRepository) SearchByName(ctx context.Context, name string) ([]*entity.Film, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Film), args.Error(1)
}

// MockGenreRepository mocks repository.GenreRepository
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) Upsert(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindByFilmIDs(ctx context.Context, filmIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	args := m.Called(ctx, filmIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]*entity.Genre), args.Error(1)
}

// MockFilmGenreRepository mocks repository.FilmGenreRepository
type MockFilmGenreRepository struct {
	mock.Mock
}

func (m *MockFilmGenreRepository) Attach(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error {
	return m.Called(ctx, filmID, genreIDs).Error(0)
}

func (m *MockFilmGenreRepository) DeleteByFilmID(ctx context.Context, filmID uuid.UUID) error {
	return m.Called(ctx, filmID).Error(0)
}

func (m *MockFilmGenreRepository) Replace(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error {
	return m.Called(ctx, filmID, genreIDs).Error(0)
}

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSessionRepository mocks repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenRevoker mocks TokenRevoker
type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return m.Called(ctx, jti, ttl).Error(0)
}

type testRepos struct {
	film      *MockFilmRepository
	genre     *MockGenreRepository
	filmGenre *MockFilmGenreRepository
	user      *MockUserRepository
	session   *MockSessionRepository
	repo      *repository.Repository
}

func newTestRepos() *testRepos {
	r := &testRepos{
		film:      new(MockFilmRepository),
		genre:     new(MockGenreRepository),
		filmGenre: new(MockFilmGenreRepository),
		user:      new(MockUserRepository),
		session:   new(MockSessionRepository),
	}
	r.repo = &repository.Repository{
		Film:      r.film,
		Genre:     r.genre,
		FilmGenre: r.filmGenre,
		User:      r.user,
		Session:   r.session,
	}
	return r
}

func (r *testRepos) assertExpectations(t mock.TestingT) {
	r.film.AssertExpectations(t)
	r.genre.AssertExpectations(t)
	r.filmGenre.AssertExpectations(t)
	r.user.AssertExpectations(t)
	r.session.AssertExpectations(t)
}

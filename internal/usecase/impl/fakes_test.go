package impl

import (
	"context"
	"strings"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users map[string]*entity.User

	findByEmailErr error
	createErr      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findByEmailErr != nil {
		return nil, r.findByEmailErr
	}

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	user.ID = uuid.New()
	r.users[user.Email] = user

	return nil
}

// fakePostRepo is an in-memory PostRepository. Posts are appended in insertion
// order and listed newest first, mirroring the real store's ordering.
type fakePostRepo struct {
	posts []*entity.Post

	findErr   error
	listErr   error
	countErr  error
	createErr error
	updateErr error
	deleteErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	for _, post := range r.posts {
		if post.ID == id {
			return post, nil
		}
	}

	return nil, repository.ErrPostNotFound
}

func (r *fakePostRepo) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	reversed := make([]*entity.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		reversed = append(reversed, r.posts[i])
	}

	if offset >= len(reversed) {
		return nil, nil
	}

	end := offset + limit
	if end > len(reversed) {
		end = len(reversed)
	}

	return reversed[offset:end], nil
}

func (r *fakePostRepo) Count(ctx context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}

	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	if r.createErr != nil {
		return r.createErr
	}

	post.ID = uuid.New()
	r.posts = append(r.posts, post)

	return nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *entity.Post) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	for i, existing := range r.posts {
		if existing.ID == post.ID {
			r.posts[i] = post

			return nil
		}
	}

	return repository.ErrPostNotFound
}

func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}

	for i, existing := range r.posts {
		if existing.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)

			return nil
		}
	}

	return repository.ErrPostNotFound
}

// fakeTxManager runs the callback without a real transaction, handing it a
// factory over the same fakes the test inspects afterwards.
type fakeTxManager struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{userRepo: m.userRepo, postRepo: m.postRepo})
}

type fakeRepoFactory struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) PostRepo() repository.PostRepository { return f.postRepo }

// fakeHasher makes hashing reversible so assertions can see through it.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(tokenString string) (uuid.UUID, error) {
	id, ok := strings.CutPrefix(tokenString, "token-for-")
	if !ok {
		return uuid.Nil, errors.New("invalid token")
	}

	return uuid.Parse(id)
}

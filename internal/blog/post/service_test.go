// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package post_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/blog/post"
	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/pkg/pagination"
	"github.com/minhanhvo/plume/pkg/query"
)

// # Test Doubles

// fakePostRepository is an in-memory PostRepository preserving insertion order.
type fakePostRepository struct {
	posts map[string]*post.Post
	order []string

	createErr error
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{posts: map[string]*post.Post{}}
}

func (f *fakePostRepository) List(_ context.Context, _ query.Sort, limit, offset int) ([]*post.Post, int, error) {
	total := len(f.order)

	var page []*post.Post
	for i := offset; i < total && i < offset+limit; i++ {
		page = append(page, f.posts[f.order[i]])
	}
	return page, total, nil
}

func (f *fakePostRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	return p, nil
}

func (f *fakePostRepository) Create(_ context.Context, p *post.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.posts[p.ID] = p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePostRepository) Update(_ context.Context, id string, patch post.Patch) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Keywords != nil {
		p.Keywords = patch.Keywords
	}
	return p, nil
}

func (f *fakePostRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Post not found")
	}
	delete(f.posts, id)
	for i, pid := range f.order {
		if pid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePostRepository) Like(_ context.Context, id string) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	p.LikesAmount++
	return p, nil
}

func (f *fakePostRepository) AttachComment(_ context.Context, postID, commentID string) (*post.Post, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	p.PostComments = append(p.PostComments, commentID)
	p.CommentsAmount++
	return p, nil
}

func (f *fakePostRepository) DetachComment(_ context.Context, postID, commentID string) (*post.Post, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, apperr.NotFound("Post not found")
	}
	for i, cid := range p.PostComments {
		if cid == commentID {
			p.PostComments = append(p.PostComments[:i], p.PostComments[i+1:]...)
			p.CommentsAmount--
			break
		}
	}
	return p, nil
}

func (f *fakePostRepository) CommentsWindow(_ context.Context, postID string, offset, limit int) ([]string, int, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, 0, apperr.NotFound("Post not found")
	}

	total := len(p.PostComments)
	window := []string{}
	for i := offset; i < total && i < offset+limit; i++ {
		window = append(window, p.PostComments[i])
	}
	return window, total, nil
}

// spyCache records cache traffic so tests can assert invalidation.
type spyCache struct {
	entries     map[string]*post.Post
	invalidated []string
}

func newSpyCache() *spyCache {
	return &spyCache{entries: map[string]*post.Post{}}
}

func (c *spyCache) Get(_ context.Context, id string) (*post.Post, bool) {
	p, ok := c.entries[id]
	return p, ok
}

func (c *spyCache) Set(_ context.Context, p *post.Post) {
	c.entries[p.ID] = p
}

func (c *spyCache) Invalidate(_ context.Context, id string) {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

func newTestService(repo *fakePostRepository, cache *spyCache) *post.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return post.NewService(repo, cache, logger)
}

func seedPosts(repo *fakePostRepository, n int) {
	for i := 0; i < n; i++ {
		p := &post.Post{
			ID:           "post-" + string(rune('a'+i)),
			Title:        "Title",
			Content:      "Content",
			AuthorID:     "author-1",
			Keywords:     []string{},
			PostComments: []string{},
		}
		repo.posts[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
}

// # Discovery

/*
TestService_List verifies the empty-store NotFound and the beyond-range page
keeping its totals.
*/
func TestService_List(t *testing.T) {
	sort := query.Sort{Column: "createdat", Direction: "DESC"}

	// 1. An entirely empty store reports NotFound.
	service := newTestService(newFakePostRepository(), newSpyCache())
	_, _, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 10}, sort)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "No posts found", appErr.Message)

	// 2. A populated store pages normally.
	repo := newFakePostRepository()
	seedPosts(repo, 5)
	service = newTestService(repo, newSpyCache())

	page, total, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 3}, sort)
	require.NoError(t, err)
	assert.Len(t, page, 3)
	assert.Equal(t, 5, total)

	// 3. A page beyond the end is empty but keeps the real total.
	page, total, err = service.List(context.Background(), pagination.Params{Page: 9, Limit: 3}, sort)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 5, total)
}

/*
TestService_GetByID verifies the read-through cache: a miss populates the
cache, a hit skips storage.
*/
func TestService_GetByID(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	cache := newSpyCache()
	service := newTestService(repo, cache)

	// 1. First read misses the cache and populates it.
	got, err := service.GetByID(context.Background(), "post-a")
	require.NoError(t, err)
	assert.Equal(t, "post-a", got.ID)
	assert.Contains(t, cache.entries, "post-a")

	// 2. Second read is served from cache even after storage loses the row.
	delete(repo.posts, "post-a")
	got, err = service.GetByID(context.Background(), "post-a")
	require.NoError(t, err)
	assert.Equal(t, "post-a", got.ID)

	// 3. An unknown ID surfaces NotFound.
	_, err = service.GetByID(context.Background(), "missing")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

// # Lifecycle

/*
TestService_Create verifies keyword normalization and the Unprocessable
mapping for persistence failures.
*/
func TestService_Create(t *testing.T) {
	repo := newFakePostRepository()
	service := newTestService(repo, newSpyCache())

	// 1. Keywords are normalized and de-duplicated, the author is preserved.
	created, err := service.Create(context.Background(), post.CreateInput{
		Title:    "Hello",
		Content:  "World",
		Keywords: []string{"Go", "Café", "GO"},
		AuthorID: "author-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"go", "cafe"}, created.Keywords)
	assert.Equal(t, "author-1", created.AuthorID)
	assert.Equal(t, []string{}, created.PostComments)

	// 2. No keywords still yields an empty slice, never nil.
	created, err = service.Create(context.Background(), post.CreateInput{
		Title:    "Bare",
		Content:  "Post",
		AuthorID: "author-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Keywords)

	// 3. A storage failure maps to Unprocessable with the fixed message.
	repo.createErr = errors.New("disk full")
	_, err = service.Create(context.Background(), post.CreateInput{
		Title:    "Doomed",
		Content:  "Post",
		AuthorID: "author-1",
	})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.HTTPStatus)
	assert.Equal(t, "Could not create the post", appErr.Message)
}

/*
TestService_Update verifies partial patches, keyword clearing, and cache
invalidation.
*/
func TestService_Update(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	repo.posts["post-a"].Keywords = []string{"old"}
	cache := newSpyCache()
	service := newTestService(repo, cache)

	// 1. Nil fields are left untouched.
	newTitle := "New Title"
	updated, err := service.Update(context.Background(), "post-a", post.UpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Content", updated.Content)
	assert.Equal(t, []string{"old"}, updated.Keywords)

	// 2. An explicit empty keyword list clears the stored keywords.
	updated, err = service.Update(context.Background(), "post-a", post.UpdateInput{Keywords: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.Keywords)

	// 3. Every update invalidates the cache entry.
	assert.Contains(t, cache.invalidated, "post-a")

	// 4. Unknown posts surface NotFound.
	_, err = service.Update(context.Background(), "missing", post.UpdateInput{Title: &newTitle})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestService_Delete verifies removal and cache invalidation.
*/
func TestService_Delete(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	cache := newSpyCache()
	service := newTestService(repo, cache)

	require.NoError(t, service.Delete(context.Background(), "post-a"))
	assert.NotContains(t, repo.posts, "post-a")
	assert.Contains(t, cache.invalidated, "post-a")

	err := service.Delete(context.Background(), "post-a")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

// # Engagement

/*
TestService_Like verifies the counter increment and cache invalidation.
*/
func TestService_Like(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	cache := newSpyCache()
	service := newTestService(repo, cache)

	liked, err := service.Like(context.Background(), "post-a")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesAmount)

	liked, err = service.Like(context.Background(), "post-a")
	require.NoError(t, err)
	assert.Equal(t, 2, liked.LikesAmount)

	assert.Contains(t, cache.invalidated, "post-a")

	_, err = service.Like(context.Background(), "missing")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestService_ListComments verifies paging over the denormalized comment list.
*/
func TestService_ListComments(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	repo.posts["post-a"].PostComments = []string{"c1", "c2", "c3", "c4", "c5"}
	service := newTestService(repo, newSpyCache())

	window, total, err := service.ListComments(context.Background(), "post-a", pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c4"}, window)
	assert.Equal(t, 5, total)
}

// # Comment Linkage

/*
TestService_CommentLinkage verifies attach and detach keep the reference list
and counter in step and invalidate the cache.
*/
func TestService_CommentLinkage(t *testing.T) {
	repo := newFakePostRepository()
	seedPosts(repo, 1)
	cache := newSpyCache()
	service := newTestService(repo, cache)

	linked, err := service.AttachComment(context.Background(), "post-a", "comment-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"comment-1"}, linked.PostComments)
	assert.Equal(t, 1, linked.CommentsAmount)

	unlinked, err := service.DetachComment(context.Background(), "post-a", "comment-1")
	require.NoError(t, err)
	assert.Empty(t, unlinked.PostComments)
	assert.Equal(t, 0, unlinked.CommentsAmount)

	// Detaching an absent comment leaves the counter alone.
	unlinked, err = service.DetachComment(context.Background(), "post-a", "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, unlinked.CommentsAmount)

	assert.Contains(t, cache.invalidated, "post-a")
}

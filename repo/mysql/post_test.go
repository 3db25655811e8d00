package mysql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

func TestPostRepository_PublishStateInvariant(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	now := time.Now()

	_, err := repo.Create(ctx, &entities.Post{UserID: u.ID, Title: "a", Slug: "a", Status: entities.PostStatusPublished})
	assert.ErrorIs(t, err, myErrors.ErrPublishedWithoutTime)

	_, err = repo.Create(ctx, &entities.Post{UserID: u.ID, Title: "b", Slug: "b", PublishedAt: &now})
	assert.ErrorIs(t, err, myErrors.ErrTimeWithoutPublished)

	created, err := repo.Create(ctx, &entities.Post{UserID: u.ID, Title: "c", Slug: "c"})
	require.NoError(t, err)
	assert.Equal(t, entities.PostStatusDraft, created.Status)

	_, err = repo.Update(ctx, created.ID, map[string]any{"status": "published"})
	assert.ErrorIs(t, err, myErrors.ErrPublishedWithoutTime)

	_, err = repo.Update(ctx, created.ID, map[string]any{"published_at": now})
	assert.ErrorIs(t, err, myErrors.ErrTimeWithoutPublished)

	var stored entities.Post
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, entities.PostStatusDraft, stored.Status)
	assert.Nil(t, stored.PublishedAt)

	updated, err := repo.Update(ctx, created.ID, map[string]any{"status": "published", "published_at": now})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished())
	require.NotNil(t, updated.PublishedAt)

	updated, err = repo.Update(ctx, created.ID, map[string]any{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestPostRepository_PublishIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	p := seedPost(t, db, u.ID, "draft")

	first, err := repo.Publish(ctx, &p)
	require.NoError(t, err)
	assert.Equal(t, entities.PostStatusPublished, first.Status)
	require.NotNil(t, first.PublishedAt)

	time.Sleep(5 * time.Millisecond)
	second, err := repo.Publish(ctx, first)
	require.NoError(t, err)
	require.NotNil(t, second.PublishedAt)
	assert.True(t, first.PublishedAt.Equal(*second.PublishedAt), "publish time must not move on re-publish")

	draft, err := repo.Unpublish(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, entities.PostStatusDraft, draft.Status)
	assert.Nil(t, draft.PublishedAt)

	_, err = repo.Publish(ctx, &entities.Post{ID: 999})
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

// 复制: 标签 [1,2] 保留，状态回到草稿，新 id 与新 slug。
func TestPostRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	t1 := seedTag(t, db, "go")
	t2 := seedTag(t, db, "db")
	src := seedPost(t, db, u.ID, "hello-world", published(time.Now()), views(42))
	attachTags(t, db, src.ID, t1.ID, t2.ID)

	clone, err := repo.Duplicate(ctx, &src)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, clone.ID)
	assert.Equal(t, "hello-world (Copy)", clone.Title)
	assert.Equal(t, "hello-world-copy", clone.Slug)
	assert.Equal(t, entities.PostStatusDraft, clone.Status)
	assert.Nil(t, clone.PublishedAt)
	assert.Zero(t, clone.ViewsCount)

	var tagIDs []uint64
	for _, tag := range clone.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	assert.ElementsMatch(t, []uint64{t1.ID, t2.ID}, tagIDs)

	again, err := repo.Duplicate(ctx, &src)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-copy-2", again.Slug)

	var sourceTags int64
	require.NoError(t, db.Model(&entities.PostTag{}).Where("post_id = ?", src.ID).Count(&sourceTags).Error)
	assert.Equal(t, int64(2), sourceTags)
}

func TestPostRepository_RestoreAndForceDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	tag := seedTag(t, db, "go")
	p1 := seedPost(t, db, u.ID, "one")
	p2 := seedPost(t, db, u.ID, "two")
	attachTags(t, db, p2.ID, tag.ID)

	_, err := repo.DeleteMany(ctx, []uint64{p1.ID, p2.ID})
	require.NoError(t, err)

	trashed, err := repo.GetByIDsIncludingTrashed(ctx, []uint64{p1.ID, p2.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, trashed, 2)

	n, err := repo.Restore(ctx, []uint64{p1.ID, p1.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	restored, err := repo.Find(ctx, p1.ID, mysql.QueryOptions{})
	require.NoError(t, err)
	assert.NotNil(t, restored)

	n, err = repo.ForceDelete(ctx, []uint64{p2.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	gone, err := repo.GetByIDsIncludingTrashed(ctx, []uint64{p2.ID}, nil)
	require.NoError(t, err)
	assert.Empty(t, gone)

	var links int64
	require.NoError(t, db.Model(&entities.PostTag{}).Where("post_id = ?", p2.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestPostRepository_SlugAndTags(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	t1 := seedTag(t, db, "go")
	t2 := seedTag(t, db, "db")
	p := seedPost(t, db, u.ID, "taken")

	exists, err := repo.SlugExists(ctx, "taken", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.SlugExists(ctx, "taken", p.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.SyncTags(ctx, p.ID, []uint64{t1.ID, t2.ID, 999}))
	loaded, err := repo.FindOrFail(ctx, p.ID, mysql.QueryOptions{Relations: []string{"Tags"}})
	require.NoError(t, err)
	assert.Len(t, loaded.Tags, 2)

	require.NoError(t, repo.SyncTags(ctx, p.ID, []uint64{t2.ID}))
	loaded, err = repo.FindOrFail(ctx, p.ID, mysql.QueryOptions{Relations: []string{"Tags"}})
	require.NoError(t, err)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, t2.ID, loaded.Tags[0].ID)

	require.NoError(t, repo.SyncTags(ctx, p.ID, nil))
	loaded, err = repo.FindOrFail(ctx, p.ID, mysql.QueryOptions{Relations: []string{"Tags"}})
	require.NoError(t, err)
	assert.Empty(t, loaded.Tags)
}

func TestPostRepository_FindBySlug(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	u := seedUser(t, db, "alice")
	c := seedCategory(t, db, "news")
	seedPost(t, db, u.ID, "live", published(time.Now()), inCategory(c.ID))
	seedPost(t, db, u.ID, "hidden")

	post, err := repo.FindBySlug(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, post.User)
	require.NotNil(t, post.Category)
	assert.Equal(t, "news", post.Category.Name)

	_, err = repo.FindBySlug(ctx, "hidden")
	assert.True(t, errors.Is(err, commonerrors.ErrRepoNotFound))

	locked, err := repo.FindForUpdate(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, locked.ID)
	_, err = repo.FindForUpdate(ctx, 999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestPostRepository_FrontendQueries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := mysql.NewPostRepository(db, nopLogger())
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	news := seedCategory(t, db, "news")
	misc := seedCategory(t, db, "misc")
	now := time.Now()

	old := seedPost(t, db, bob.ID, "old", published(now.AddDate(0, 0, -30)), views(1000), inCategory(news.ID))
	hot := seedPost(t, db, bob.ID, "hot", published(now.AddDate(0, 0, -2)), views(500), inCategory(news.ID), featured())
	mild := seedPost(t, db, bob.ID, "mild", published(now.AddDate(0, 0, -1)), views(10), inCategory(misc.ID))
	seedPost(t, db, bob.ID, "draft", views(9999), inCategory(news.ID))
	seedPost(t, db, alice.ID, "alice-news", published(now.AddDate(0, 0, -3)), inCategory(news.ID))

	latest, err := repo.GetLatestPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, mild.ID, latest[0].ID)
	assert.Equal(t, hot.ID, latest[1].ID)
	assert.NotNil(t, latest[0].User)

	featuredPosts, err := repo.GetFeaturedPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, featuredPosts, 1)
	assert.Equal(t, hot.ID, featuredPosts[0].ID)

	trending, err := repo.GetTrendingPosts(ctx, 10, 14)
	require.NoError(t, err)
	require.Len(t, trending, 3)
	assert.Equal(t, hot.ID, trending[0].ID)
	for _, p := range trending {
		assert.NotEqual(t, old.ID, p.ID, "posts older than the window are excluded")
	}

	feed, err := repo.GetPersonalizedFeed(ctx, &alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, p := range feed {
		assert.Equal(t, bob.ID, p.UserID)
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, news.ID, *p.CategoryID)
	}

	anonymous, err := repo.GetPersonalizedFeed(ctx, nil, 3)
	require.NoError(t, err)
	assert.Len(t, anonymous, 3)

	related, err := repo.GetRelatedPosts(ctx, hot.ID, &news.ID, 10)
	require.NoError(t, err)
	assert.Len(t, related, 2)
	for _, p := range related {
		assert.NotEqual(t, hot.ID, p.ID)
	}
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

func newActionService(f *fixture) service.PostActionService {
	return service.NewPostActionService(f.posts, f.tx, f.storage, zap.NewNop())
}

func TestPostActionService_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tag := f.tag(t, "go")
	source := f.post(t, entities.Post{
		UserID: 1, Title: "Hello", Slug: "hello",
		Status: entities.PostStatusPublished, PublishedAt: publishedAt(0), ViewsCount: 40,
	})
	require.NoError(t, f.db.Create(&entities.PostTag{PostID: source.ID, TagID: tag.ID}).Error)
	svc := newActionService(f)

	copied, err := svc.Duplicate(ctx, source.ID)
	require.NoError(t, err)
	assert.NotEqual(t, source.ID, copied.ID)
	assert.Equal(t, "Hello (Copy)", copied.Title)
	assert.Equal(t, "hello-copy", copied.Slug)
	assert.Equal(t, "draft", copied.Status)
	assert.Empty(t, copied.PublishedAt)
	assert.Zero(t, copied.ViewsCount)
	assert.Len(t, copied.Tags, 1)

	_, err = svc.Duplicate(ctx, 999)
	assert.ErrorIs(t, err, &myErrors.PostError{Kind: myErrors.PostNotFound})
}

func TestPostActionService_PublishAndUnpublish(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.post(t, entities.Post{UserID: 1, Slug: "draft"})
	svc := newActionService(f)

	published, err := svc.Publish(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "published", published.Status)
	assert.NotEmpty(t, published.PublishedAt)

	again, err := svc.Publish(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, published.PublishedAt, again.PublishedAt)

	unpublished, err := svc.Unpublish(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", unpublished.Status)
	assert.Empty(t, unpublished.PublishedAt)

	_, err = svc.Publish(ctx, 999)
	assert.ErrorIs(t, err, &myErrors.PostError{Kind: myErrors.PostNotFound})
	_, err = svc.Unpublish(ctx, 999)
	assert.ErrorIs(t, err, &myErrors.PostError{Kind: myErrors.PostNotFound})
}

func TestPostActionService_BulkValidation(t *testing.T) {
	ctx := context.Background()
	svc := newActionService(newFixture(t))

	tooMany := make([]uint64, 101)
	for i := range tooMany {
		tooMany[i] = uint64(i + 1)
	}

	for name, ids := range map[string][]uint64{
		"空列表":    nil,
		"超过 100 个": tooMany,
		"包含 0":    {1, 0},
	} {
		t.Run(name, func(t *testing.T) {
			var verr *myErrors.ValidationError
			_, err := svc.BulkDelete(ctx, ids)
			assert.ErrorAs(t, err, &verr)
			_, err = svc.BulkRestore(ctx, ids)
			assert.ErrorAs(t, err, &verr)
			_, err = svc.BulkForceDelete(ctx, ids)
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestPostActionService_BulkLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.post(t, entities.Post{UserID: 1, Slug: "a", Image: ptr("post_images/a.png")})
	b := f.post(t, entities.Post{UserID: 1, Slug: "b"})
	f.storage.objects["post_images/a.png"] = []byte("a")
	svc := newActionService(f)

	affected, err := svc.BulkDelete(ctx, []uint64{a.ID, b.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	affected, err = svc.BulkRestore(ctx, []uint64{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = svc.BulkForceDelete(ctx, []uint64{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.Equal(t, []string{"post_images/a.png"}, f.storage.deletedKeys())

	var count int64
	require.NoError(t, f.db.Unscoped().Model(&entities.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

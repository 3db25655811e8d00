package vo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/blog_service/models/entities"
)

func TestNewPostVO(t *testing.T) {
	image := "post_images/a.png"
	published := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := &entities.Post{
		ID:          1,
		UserID:      9,
		Title:       "Hello",
		Slug:        "hello",
		Status:      entities.PostStatusPublished,
		Image:       &image,
		PublishedAt: &published,
		CreatedAt:   published,
		Tags:        []entities.Tag{{ID: 2, Name: "Go", Slug: "go"}},
	}

	got := NewPostVO(p, func(key string) string { return "https://cdn.example.com/" + key })

	assert.Equal(t, "Unknown", got.User.Name)
	assert.Equal(t, uint64(9), got.User.ID)
	assert.Equal(t, "Uncategorized", got.Category.Name)
	assert.Equal(t, "May 01, 2024", got.PublishedAt)
	assert.Equal(t, "https://cdn.example.com/post_images/a.png", got.ImageURL)
	assert.Len(t, got.Tags, 1)
}

func TestNewPostVO_WithRelations(t *testing.T) {
	p := &entities.Post{
		ID:       1,
		User:     &entities.User{ID: 3, Name: "alice"},
		Category: &entities.Category{ID: 4, Name: "News"},
	}
	got := NewPostVO(p, nil)
	assert.Equal(t, "alice", got.User.Name)
	assert.Equal(t, "News", got.Category.Name)
	assert.Empty(t, got.ImageURL)
	assert.Empty(t, got.PublishedAt)
}

func TestNewPostVOs_Empty(t *testing.T) {
	got := NewPostVOs(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewAuthorVOs(t *testing.T) {
	avatar := "https://img.example.com/bob.png"
	got := NewAuthorVOs([]entities.User{
		{ID: 1, Name: "alice", PostsCount: 2},
		{ID: 2, Name: "bob", Role: "editor", Avatar: &avatar},
	})
	assert.Equal(t, "Author", got[0].Role)
	assert.Equal(t, "https://i.pravatar.cc/150?u=1", got[0].Avatar)
	assert.Equal(t, "editor", got[1].Role)
	assert.Equal(t, avatar, got[1].Avatar)
}

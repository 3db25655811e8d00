package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, entities.AutoMigrate(db))
	return db
}

// fakeStorage 记录上传与删除，可以注入失败。
type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	storeErr  error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Store(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storeErr != nil {
		return "", s.storeErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.objects[key] = data
	return key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) URL(key string) string { return "https://cdn.example.com/" + key }

func (s *fakeStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *fakeStorage) deletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}

var errBoom = errors.New("boom")

func image(name string) *service.ImageUpload {
	data := []byte("fake image " + name)
	return &service.ImageUpload{
		Filename:    name,
		ContentType: "image/png",
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}
}

type fixture struct {
	db      *gorm.DB
	posts   mysql.PostRepository
	tags    mysql.TagRepository
	storage *fakeStorage
	tx      *mysql.TxManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newDB(t)
	return &fixture{
		db:      db,
		posts:   mysql.NewPostRepository(db, zap.NewNop()),
		tags:    mysql.NewTagRepository(db, zap.NewNop()),
		storage: newFakeStorage(),
		tx:      mysql.NewTxManager(db),
	}
}

func (f *fixture) user(t *testing.T, name string) entities.User {
	t.Helper()
	u := entities.User{Name: name, Email: name + "@example.com", Role: "author"}
	require.NoError(t, f.db.Create(&u).Error)
	return u
}

func (f *fixture) tag(t *testing.T, name string) entities.Tag {
	t.Helper()
	tag := entities.Tag{Name: name, Slug: name}
	require.NoError(t, f.db.Create(&tag).Error)
	return tag
}

func (f *fixture) category(t *testing.T, name string) entities.Category {
	t.Helper()
	c := entities.Category{Name: name, Slug: name}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) post(t *testing.T, p entities.Post) entities.Post {
	t.Helper()
	if p.Content == "" {
		p.Content = "body of " + p.Slug
	}
	if p.Title == "" {
		p.Title = p.Slug
	}
	if p.Status == "" {
		p.Status = entities.PostStatusDraft
	}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func publishedAt(d time.Duration) *time.Time {
	at := time.Now().Add(-d)
	return &at
}

func ptr[T any](v T) *T { return &v }

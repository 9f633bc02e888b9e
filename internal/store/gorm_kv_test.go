package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestKV(t *testing.T) *GormKV {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return NewGormKV(db)
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	kv := setupTestKV(t)

	val, err := kv.Get(context.Background(), KeyHistory)
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestSetThenGet(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	err := kv.Set(ctx, KeyFavorites, []byte(`["a","b"]`))
	assert.NoError(t, err)

	val, err := kv.Get(ctx, KeyFavorites)
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(val))
}

func TestSetOverwrites(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, KeyAgents, []byte(`[]`)))
	assert.NoError(t, kv.Set(ctx, KeyAgents, []byte(`[{"id":"1","name":"helper","systemPrompt":"x"}]`)))

	val, err := kv.Get(ctx, KeyAgents)
	assert.NoError(t, err)
	assert.Contains(t, string(val), "helper")
}

func TestKeysAreIndependent(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, KeyHistory, []byte(`[{"id":"h1"}]`)))

	val, err := kv.Get(ctx, KeyCustomTemplates)
	assert.NoError(t, err)
	assert.Nil(t, val)
}

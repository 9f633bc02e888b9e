package history_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"promptstudio-backend/internal/api/v1/history"
	"promptstudio-backend/internal/models"
	"promptstudio-backend/internal/store"
)

func setupTestStore() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&store.Entry{}); err != nil {
		panic("failed to migrate database")
	}
	store.Default = store.NewGormKV(db)
}

func TestSaveAndListHistory(t *testing.T) {
	setupTestStore()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(history.SaveHistoryRequest{
		Original: "Write a tagline for a bakery",
		Category: "marketing",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/history", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	history.SaveHistory(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var saveResp struct {
		Data models.HistoryEntry `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &saveResp)
	assert.NotEmpty(t, saveResp.Data.ID)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/history", nil)

	history.ListHistory(c2)
	assert.Equal(t, http.StatusOK, w2.Code)

	var listResp struct {
		Data history.HistoryListResponse `json:"data"`
	}
	json.Unmarshal(w2.Body.Bytes(), &listResp)
	assert.Equal(t, 1, listResp.Data.Total)
	assert.Equal(t, "Write a tagline for a bakery", listResp.Data.Items[0].Original)
}

func TestSaveHistoryMissingOriginal(t *testing.T) {
	setupTestStore()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/history", bytes.NewBufferString(`{"category":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	history.SaveHistory(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteRoundTrip(t *testing.T) {
	setupTestStore()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(history.FavoriteRequest{ID: "prompt-1"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/favorites", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	history.AddFavorite(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/favorites", nil)

	history.ListFavorites(c2)
	assert.Equal(t, http.StatusOK, w2.Code)

	var listResp struct {
		Data []string `json:"data"`
	}
	json.Unmarshal(w2.Body.Bytes(), &listResp)
	assert.Equal(t, []string{"prompt-1"}, listResp.Data)
}

package post

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bloggy-app/bloggy-backend/internal/response"
)

func commentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "post_id", "user_id", "comment", "created_at", "updated_at"})
}

func TestCreateComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		db, _ := setupMockDB(t)
		h := NewHandler(db)

		r := gin.New()
		r.POST("/api/comment/addcomment", asUser(1), h.CreateComment)

		w := performJSON(r, http.MethodPost, "/api/comment/addcomment", gin.H{"post_id": 7})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("post not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).WillReturnRows(postRows())

		r := gin.New()
		r.POST("/api/comment/addcomment", asUser(1), h.CreateComment)

		w := performJSON(r, http.MethodPost, "/api/comment/addcomment", gin.H{"post_id": 99, "comment": "nice"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("increments counter and inserts in one transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(postRows().AddRow(7, 2, "Hi", "world", 0, time.Now(), time.Now()))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "posts"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "comments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		r := gin.New()
		r.POST("/api/comment/addcomment", asUser(1), h.CreateComment)

		w := performJSON(r, http.MethodPost, "/api/comment/addcomment", gin.H{"post_id": 7, "comment": "nice"})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(7), data["post_id"])
		assert.Equal(t, "nice", data["comment"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShowComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).WillReturnRows(commentRows())

		r := gin.New()
		r.GET("/api/comment/:id", h.ShowComment)

		w := performJSON(r, http.MethodGet, "/api/comment/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("post not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).WillReturnRows(postRows())

		r := gin.New()
		r.DELETE("/api/comment/:id", asUser(1), h.DeleteComment)

		w := performJSON(r, http.MethodDelete, "/api/comment/5", gin.H{"post_id": 99})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(postRows().AddRow(7, 2, "Hi", "world", 1, time.Now(), time.Now()))
		mock.ExpectQuery(`SELECT`).
			WillReturnRows(commentRows().AddRow(5, 7, 2, "nice", time.Now(), time.Now()))

		r := gin.New()
		r.DELETE("/api/comment/:id", asUser(1), h.DeleteComment)

		w := performJSON(r, http.MethodDelete, "/api/comment/5", gin.H{"post_id": 7})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("forbidden for absent comment", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(postRows().AddRow(7, 2, "Hi", "world", 1, time.Now(), time.Now()))
		mock.ExpectQuery(`SELECT`).WillReturnRows(commentRows())

		r := gin.New()
		r.DELETE("/api/comment/:id", asUser(1), h.DeleteComment)

		w := performJSON(r, http.MethodDelete, "/api/comment/5", gin.H{"post_id": 7})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("comment of another post leaves counters untouched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(postRows().AddRow(7, 2, "Hi", "world", 0, time.Now(), time.Now()))
		// The lookup is scoped to the supplied post; a comment hanging off
		// another post must not match.
		mock.ExpectQuery(regexp.QuoteMeta(`AND post_id`)).WillReturnRows(commentRows())

		r := gin.New()
		r.DELETE("/api/comment/:id", asUser(1), h.DeleteComment)

		w := performJSON(r, http.MethodDelete, "/api/comment/5", gin.H{"post_id": 7})
		assert.Equal(t, http.StatusForbidden, w.Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("decrements counter and deletes in one transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		h := NewHandler(db)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(postRows().AddRow(7, 2, "Hi", "world", 1, time.Now(), time.Now()))
		mock.ExpectQuery(`SELECT`).
			WillReturnRows(commentRows().AddRow(5, 7, 1, "nice", time.Now(), time.Now()))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "posts"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "comments"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		r := gin.New()
		r.DELETE("/api/comment/:id", asUser(1), h.DeleteComment)

		w := performJSON(r, http.MethodDelete, "/api/comment/5", gin.H{"post_id": 7})
		assert.Equal(t, http.StatusOK, w.Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

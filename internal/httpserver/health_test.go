package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-maintenance-assistant/pkg/log"
)

func TestReadyCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	srv := HTTPServer{l: log.NewNop(), postgresDB: db, redis: rdb}
	r := gin.New()
	r.GET("/ready", srv.readyCheck)

	ready := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		return w.Code
	}

	mock.ExpectPing()
	assert.Equal(t, http.StatusOK, ready())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, ready())

	mock.ExpectPing()
	mr.Close()
	assert.Equal(t, http.StatusServiceUnavailable, ready())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "maintenance usecase is required")
}
